package contentsource

import (
	"fmt"
	"sort"

	"github.com/veedubyou/castel-site/src/shared/content/entity"
)

// ApplyQuery evaluates a query's filters, order and limit against entries that
// are already known to be of the query's content type. Sources without a query
// language of their own use it after fetching
func ApplyQuery(entries []contententity.Entry, query contententity.Query) []contententity.Entry {
	matched := []contententity.Entry{}
	for _, entry := range entries {
		if matchesAll(entry, query.Filters) {
			matched = append(matched, entry)
		}
	}

	if query.Order != nil {
		order := *query.Order
		sort.SliceStable(matched, func(i, j int) bool {
			cmp := compareValues(matched[i].Fields[order.Field], matched[j].Fields[order.Field])
			if order.Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}

	return matched
}

func matchesAll(entry contententity.Entry, filters []contententity.Filter) bool {
	for _, filter := range filters {
		value, ok := entry.Fields[filter.Field]
		if !ok {
			return false
		}

		switch filter.Op {
		case contententity.Equals:
			if fmt.Sprint(value) != filter.Value {
				return false
			}
		case contententity.GreaterThanOrEqual:
			if compareValues(value, filter.Value) < 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// compareValues orders numbers numerically and everything else by its text form,
// which is right for the ISO dates the site sorts on
func compareValues(a any, b any) int {
	if af, ok := asNumber(a); ok {
		if bf, ok := asNumber(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
