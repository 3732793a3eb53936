package releaseusecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/veedubyou/castel-site/src/server/internal/lib/contentfetch"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/fallback"
	"github.com/veedubyou/castel-site/src/shared/content/source"
)

const (
	DefaultReleasesLimit = 10
	DefaultFeaturedLimit = 4
)

type Usecase struct {
	source contentsource.Source
}

func NewUsecase(source contentsource.Source) Usecase {
	return Usecase{
		source: source,
	}
}

// GetMusicReleases returns the newest releases first
func (u Usecase) GetMusicReleases(ctx context.Context, limit int) []contententity.MusicRelease {
	limit = contentfetch.LimitOrDefault(limit, DefaultReleasesLimit)

	query := contententity.NewQuery(contententity.MusicReleaseType).
		OrderByDesc("releaseDate").
		WithLimit(limit)

	releases, _ := contentfetch.Records(ctx, u.source, query, fallback.MusicReleases)
	return contentfetch.Take(releases, limit)
}

func (u Usecase) GetFeaturedReleases(ctx context.Context, limit int) []contententity.MusicRelease {
	limit = contentfetch.LimitOrDefault(limit, DefaultFeaturedLimit)

	query := contententity.NewQuery(contententity.MusicReleaseType).
		Where("featured", "true").
		OrderByDesc("releaseDate").
		WithLimit(limit)

	featuredFallback := func() []contententity.MusicRelease {
		return lo.Filter(fallback.MusicReleases(), func(release contententity.MusicRelease, _ int) bool {
			return release.Fields.Defined.Featured
		})
	}

	releases, _ := contentfetch.Records(ctx, u.source, query, featuredFallback)
	return contentfetch.Take(releases, limit)
}
