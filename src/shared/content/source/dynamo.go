package contentsource

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/lib/dynamo"
	"github.com/veedubyou/castel-site/src/shared/lib/errors/mark"
)

const (
	ContentTable   = "ContentEntries"
	contentTypeKey = "content_type"
	idKey          = "id"
)

// DBEntry is the stored form of an entry, also used as the table schema
type DBEntry struct {
	ContentType string         `dynamo:"content_type,hash"`
	ID          string         `dynamo:"id,range"`
	CreatedAt   string         `dynamo:"createdAt"`
	UpdatedAt   string         `dynamo:"updatedAt"`
	Fields      map[string]any `dynamo:"fields"`
}

var _ Source = DynamoSource{}

type DynamoSource struct {
	dynamoDB dynamolib.DynamoDBWrapper
}

func NewDynamoSource(dynamoDB dynamolib.DynamoDBWrapper) DynamoSource {
	return DynamoSource{
		dynamoDB: dynamoDB,
	}
}

func (d DynamoSource) GetEntries(ctx context.Context, query contententity.Query) ([]contententity.Entry, error) {
	if query.ContentType == "" {
		err := errors.New("Content type is empty")
		return nil, mark.Wrap(err, DefaultErrorMark, "No content type provided to query entries")
	}

	values := []DBEntry{}
	err := d.dynamoDB.Table(ContentTable).
		Get(contentTypeKey, string(query.ContentType)).
		AllWithContext(ctx, &values)
	if err != nil {
		return nil, mark.Wrap(err, UnavailableMark, "Failed to query content entries")
	}

	entries := make([]contententity.Entry, 0, len(values))
	for _, value := range values {
		fields := value.Fields
		if fields == nil {
			fields = map[string]any{}
		}

		entries = append(entries, contententity.Entry{
			Sys: contententity.Sys{
				ID:        value.ID,
				CreatedAt: value.CreatedAt,
				UpdatedAt: value.UpdatedAt,
			},
			ContentType: contententity.ContentType(value.ContentType),
			Fields:      fields,
		})
	}

	return ApplyQuery(entries, query), nil
}

// EnsureTable creates the content table unless it already exists
func (d DynamoSource) EnsureTable(ctx context.Context) error {
	tables, err := d.dynamoDB.ListTables().AllWithContext(ctx)
	if err != nil {
		return errors.Wrap(err, "Failed to list tables")
	}

	for _, table := range tables {
		if table == ContentTable {
			return nil
		}
	}

	err = d.dynamoDB.CreateTable(ContentTable, DBEntry{}).
		OnDemand(true).
		RunWithContext(ctx)
	if err != nil {
		return errors.Wrap(err, "Failed to create content table")
	}

	return nil
}

func (d DynamoSource) PutEntry(ctx context.Context, entry contententity.Entry) error {
	if entry.Sys.ID == "" {
		err := errors.New("Entry ID is empty")
		return mark.Wrap(err, DefaultErrorMark, "No ID provided to put entry")
	}

	item := map[string]any{
		contentTypeKey: string(entry.ContentType),
		idKey:          entry.Sys.ID,
		"createdAt":    entry.Sys.CreatedAt,
		"updatedAt":    entry.Sys.UpdatedAt,
		"fields":       entry.Fields,
	}

	if err := d.dynamoDB.Table(ContentTable).Put(item).RunWithContext(ctx); err != nil {
		return mark.Wrap(err, UnavailableMark, "Failed to put content entry")
	}

	return nil
}
