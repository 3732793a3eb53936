package contentsource_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/source"
)

func tourEntry(id string, date string, featured bool) contententity.Entry {
	return contententity.Entry{
		Sys:         contententity.Sys{ID: id},
		ContentType: contententity.TourDateType,
		Fields: map[string]any{
			"date":      date,
			"featured":  featured,
			"trackSize": float64(len(id)),
		},
	}
}

func ids(entries []contententity.Entry) []string {
	result := []string{}
	for _, entry := range entries {
		result = append(result, entry.Sys.ID)
	}
	return result
}

var _ = Describe("ApplyQuery", func() {
	var entries []contententity.Entry

	BeforeEach(func() {
		entries = []contententity.Entry{
			tourEntry("b", "2024-07-22", false),
			tourEntry("a", "2024-07-15", true),
			tourEntry("ccc", "2024-08-01", true),
			tourEntry("dd", "2024-06-30", false),
		}
	})

	It("returns everything for an empty query", func() {
		result := contentsource.ApplyQuery(entries, contententity.NewQuery(contententity.TourDateType))
		Expect(ids(result)).To(Equal([]string{"b", "a", "ccc", "dd"}))
	})

	It("filters on equality by text form", func() {
		query := contententity.NewQuery(contententity.TourDateType).Where("featured", "true")
		Expect(ids(contentsource.ApplyQuery(entries, query))).To(Equal([]string{"a", "ccc"}))
	})

	It("filters dates at or after a bound", func() {
		query := contententity.NewQuery(contententity.TourDateType).WhereAtLeast("date", "2024-07-15")
		Expect(ids(contentsource.ApplyQuery(entries, query))).To(Equal([]string{"b", "a", "ccc"}))
	})

	It("excludes entries missing a filtered field", func() {
		query := contententity.NewQuery(contententity.TourDateType).Where("venue", "anything")
		Expect(contentsource.ApplyQuery(entries, query)).To(BeEmpty())
	})

	It("orders ascending and descending", func() {
		ascending := contententity.NewQuery(contententity.TourDateType).OrderBy("date")
		Expect(ids(contentsource.ApplyQuery(entries, ascending))).To(Equal([]string{"dd", "a", "b", "ccc"}))

		descending := contententity.NewQuery(contententity.TourDateType).OrderByDesc("date")
		Expect(ids(contentsource.ApplyQuery(entries, descending))).To(Equal([]string{"ccc", "b", "a", "dd"}))
	})

	It("orders numbers numerically", func() {
		query := contententity.NewQuery(contententity.TourDateType).OrderByDesc("trackSize")
		Expect(ids(contentsource.ApplyQuery(entries, query))).To(Equal([]string{"ccc", "dd", "b", "a"}))
	})

	It("applies the limit last", func() {
		query := contententity.NewQuery(contententity.TourDateType).
			Where("featured", "true").
			OrderByDesc("date").
			WithLimit(1)
		Expect(ids(contentsource.ApplyQuery(entries, query))).To(Equal([]string{"ccc"}))
	})
})
