package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/veedubyou/castel-site/src/shared/content/fallback"
	"github.com/veedubyou/castel-site/src/shared/content/source"
	"github.com/veedubyou/castel-site/src/shared/lib/dynamo"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the DynamoDB content table and fill it with the built-in content",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dynamoSource := contentsource.NewDynamoSource(dynamolib.NewDynamoDB(dynamoConfig()))

			if err := dynamoSource.EnsureTable(ctx); err != nil {
				return errors.Wrap(err, "Failed to prepare the content table")
			}

			entries, err := fallback.Entries()
			if err != nil {
				return err
			}

			for _, entry := range entries {
				if err := dynamoSource.PutEntry(ctx, entry); err != nil {
					return errors.Wrapf(err, "Failed to seed %s %s", entry.ContentType, entry.Sys.ID)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d entries into %s\n", len(entries), contentsource.ContentTable)
			return nil
		},
	}
}
