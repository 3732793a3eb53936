package main

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/veedubyou/castel-site/src/shared/config"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/fallback"
	"github.com/veedubyou/castel-site/src/shared/content/source"
	"github.com/veedubyou/castel-site/src/shared/lib/dynamo"
)

// the first field present names the entry and dates it
var (
	labelFields = []string{"title", "venue"}
	dateFields  = []string{"publishDate", "releaseDate", "date"}
)

func newContentCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "content [type]",
		Short:     "List the site content from the configured source",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: lo.Map(contententity.AllContentTypes, func(t contententity.ContentType, _ int) string { return string(t) }),
		RunE: func(cmd *cobra.Command, args []string) error {
			contentTypes := contententity.AllContentTypes
			if len(args) == 1 {
				contentType := contententity.ContentType(args[0])
				if !lo.Contains(contententity.AllContentTypes, contentType) {
					return errors.Newf("Unknown content type %q", args[0])
				}
				contentTypes = []contententity.ContentType{contentType}
			}

			source, origin := commandSource()

			rows := [][]string{}
			for _, contentType := range contentTypes {
				entries, err := source.GetEntries(cmd.Context(), contententity.NewQuery(contentType))
				if err != nil {
					return errors.Wrapf(err, "Failed to list %s entries", contentType)
				}

				for _, entry := range entries {
					rows = append(rows, []string{
						string(contentType),
						entry.Sys.ID,
						firstField(entry, labelFields),
						firstField(entry, dateFields),
					})
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Source: %s\n", origin)
			fmt.Fprintln(out, renderTable([]string{"Type", "ID", "Name", "Date"}, rows))
			return nil
		},
	}
}

func commandSource() (contentsource.Source, string) {
	switch t := contentConfig().(type) {
	case config.Contentful:
		return contentsource.NewContentfulSource(t, nil), "contentful"

	case config.DynamoContent:
		return contentsource.NewDynamoSource(dynamolib.NewDynamoDB(t.Dynamo)), "dynamo"

	default:
		return builtInSource{}, "built-in"
	}
}

type builtInSource struct{}

func (builtInSource) GetEntries(_ context.Context, query contententity.Query) ([]contententity.Entry, error) {
	entries, err := fallback.Entries()
	if err != nil {
		return nil, err
	}

	ofType := lo.Filter(entries, func(entry contententity.Entry, _ int) bool {
		return entry.ContentType == query.ContentType
	})

	return contentsource.ApplyQuery(ofType, query), nil
}

func firstField(entry contententity.Entry, names []string) string {
	for _, name := range names {
		if value, ok := entry.Fields[name]; ok {
			return fmt.Sprint(value)
		}
	}

	return ""
}
