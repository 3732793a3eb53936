package testlib

import (
	"context"

	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/source"
	"github.com/veedubyou/castel-site/src/shared/content/source/contentsourcefakes"
)

// SourceFromEntries is a fake content source answering every query
// from entries, the way a CMS holding exactly those entries would
func SourceFromEntries(entries ...contententity.Entry) *contentsourcefakes.FakeSource {
	source := &contentsourcefakes.FakeSource{}
	source.GetEntriesCalls(func(_ context.Context, query contententity.Query) ([]contententity.Entry, error) {
		ofType := []contententity.Entry{}
		for _, entry := range entries {
			if entry.ContentType == query.ContentType {
				ofType = append(ofType, entry)
			}
		}

		return contentsource.ApplyQuery(ofType, query), nil
	})

	return source
}

func EntriesOf[F any](contentType contententity.ContentType, records []contententity.Record[F]) []contententity.Entry {
	entries := []contententity.Entry{}
	for _, record := range records {
		entries = append(entries, ExpectSuccess(record.ToEntry(contentType)))
	}

	return entries
}

func ContentEntry(contentType contententity.ContentType, id string, fields map[string]any) contententity.Entry {
	return contententity.Entry{
		Sys: contententity.Sys{
			ID:        id,
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-01-01T00:00:00Z",
		},
		ContentType: contentType,
		Fields:      fields,
	}
}

func ExpectEntryIDs[F any](records []contententity.Record[F], ids ...string) {
	actual := []string{}
	for _, record := range records {
		actual = append(actual, record.Sys.ID)
	}

	if len(ids) == 0 {
		ExpectWithOffset(1, actual).To(BeEmpty())
		return
	}

	ExpectWithOffset(1, actual).To(Equal(ids))
}
