package contententity

type FilterOp string

const (
	Equals             FilterOp = "eq"
	GreaterThanOrEqual FilterOp = "gte"
)

type Filter struct {
	Field string
	Op    FilterOp
	Value string
}

type Order struct {
	Field      string
	Descending bool
}

// Query is the whole query surface the site needs from a content source:
// one content type, optional field filters, optional single-field order and a limit
type Query struct {
	ContentType ContentType
	Filters     []Filter
	Order       *Order
	Limit       int
}

func NewQuery(contentType ContentType) Query {
	return Query{ContentType: contentType}
}

func (q Query) Where(field string, value string) Query {
	q.Filters = append(append([]Filter{}, q.Filters...), Filter{Field: field, Op: Equals, Value: value})
	return q
}

func (q Query) WhereAtLeast(field string, value string) Query {
	q.Filters = append(append([]Filter{}, q.Filters...), Filter{Field: field, Op: GreaterThanOrEqual, Value: value})
	return q
}

func (q Query) OrderBy(field string) Query {
	q.Order = &Order{Field: field}
	return q
}

func (q Query) OrderByDesc(field string) Query {
	q.Order = &Order{Field: field, Descending: true}
	return q
}

func (q Query) WithLimit(limit int) Query {
	q.Limit = limit
	return q
}
