package contentsource

import (
	"context"

	"github.com/cockroachdb/errors/domains"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

var UnavailableMark = domains.New("content_source_unavailable")
var BadResponseMark = domains.New("content_source_bad_response")
var DefaultErrorMark = domains.New("default_error")

// Source is anything able to answer a content query.
// Entries come back in the order the query asked for
//
//counterfeiter:generate . Source
type Source interface {
	GetEntries(ctx context.Context, query contententity.Query) ([]contententity.Entry, error)
}
