// Package contentfetch runs a content query against the configured source and
// falls back to the built-in records whenever that isn't possible.
package contentfetch

import (
	"context"

	"github.com/apex/log"
	"github.com/samber/lo"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/source"
)

type Origin string

const (
	Live     Origin = "live"
	Fallback Origin = "fallback"
)

// Records queries source and decodes the result. A nil source, a failing
// query or an undecodable response all yield fallback() instead; failures
// are logged and never surfaced
func Records[F any](
	ctx context.Context,
	source contentsource.Source,
	query contententity.Query,
	fallback func() []contententity.Record[F],
) ([]contententity.Record[F], Origin) {
	logger := log.WithField("content_type", query.ContentType)

	if source == nil {
		logger.Debug("No content source configured, serving fallback records")
		return fallback(), Fallback
	}

	entries, err := source.GetEntries(ctx, query)
	if err != nil {
		logger.WithError(err).Warn("Content query failed, serving fallback records")
		return fallback(), Fallback
	}

	records, err := contententity.DecodeRecords[F](entries)
	if err != nil {
		logger.WithError(err).Warn("Content response couldn't be decoded, serving fallback records")
		return fallback(), Fallback
	}

	return records, Live
}

// LimitOrDefault treats every non-positive limit as unset
func LimitOrDefault(limit int, defaultLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}

	return limit
}

// Take returns at most n items, preserving order
func Take[T any](items []T, n int) []T {
	if n >= len(items) {
		return items
	}

	if n <= 0 {
		return items[:0]
	}

	return lo.Subset(items, 0, uint(n))
}
