package pageusecase

import (
	"context"

	"github.com/apex/log"
	"github.com/samber/lo"
	"github.com/veedubyou/castel-site/src/server/internal/blog/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/errors/api"
	"github.com/veedubyou/castel-site/src/server/internal/lib/clock"
	"github.com/veedubyou/castel-site/src/server/internal/page/richtext"
	"github.com/veedubyou/castel-site/src/server/internal/release/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/tour/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/track/usecase"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/profile"
	"golang.org/x/sync/errgroup"
)

const (
	LandingPostsLimit    = 6
	LandingReleasesLimit = 6
	LandingTourLimit     = 10
	BlogIndexLimit       = 20
)

type Usecase struct {
	blog     blogusecase.Usecase
	releases releaseusecase.Usecase
	tour     tourusecase.Usecase
	tracks   trackusecase.Usecase
	profile  profile.Profile
	clock    clock.Clock
}

func NewUsecase(
	blog blogusecase.Usecase,
	releases releaseusecase.Usecase,
	tour tourusecase.Usecase,
	tracks trackusecase.Usecase,
	profile profile.Profile,
	clock clock.Clock,
) Usecase {
	return Usecase{
		blog:     blog,
		releases: releases,
		tour:     tour,
		tracks:   tracks,
		profile:  profile,
		clock:    clock,
	}
}

func (u Usecase) chrome() Chrome {
	return Chrome{
		Profile: u.profile,
		Year:    u.clock().Year(),
	}
}

// Landing gathers every section of the home page. The sections are fetched
// concurrently and each one falls back to sample content on its own
func (u Usecase) Landing(ctx context.Context) Landing {
	landing := Landing{Chrome: u.chrome()}

	group := errgroup.Group{}

	group.Go(func() error {
		landing.Tracks = u.tracks.GetTracks(ctx)
		return nil
	})

	group.Go(func() error {
		posts := u.blog.GetBlogPosts(ctx, LandingPostsLimit)
		landing.Posts = lo.Map(posts, func(post contententity.BlogPost, _ int) PostCard {
			return toPostCard(post)
		})
		return nil
	})

	group.Go(func() error {
		releases := u.releases.GetMusicReleases(ctx, LandingReleasesLimit)
		landing.Releases = lo.Map(releases, func(release contententity.MusicRelease, _ int) ReleaseCard {
			return toReleaseCard(release)
		})
		return nil
	})

	group.Go(func() error {
		dates := u.tour.GetUpcomingTourDates(ctx, LandingTourLimit)
		landing.TourDates = lo.Map(dates, func(date contententity.TourDate, _ int) TourCard {
			return toTourCard(date)
		})
		return nil
	})

	_ = group.Wait()
	return landing
}

func (u Usecase) BlogIndex(ctx context.Context) BlogIndex {
	posts := u.blog.GetBlogPosts(ctx, BlogIndexLimit)

	return BlogIndex{
		Chrome: u.chrome(),
		Posts: lo.Map(posts, func(post contententity.BlogPost, _ int) PostCard {
			return toPostCard(post)
		}),
	}
}

func (u Usecase) BlogPost(ctx context.Context, slug string) (Post, *api.Error) {
	post, apiErr := u.blog.GetBlogPost(ctx, slug)
	if apiErr != nil {
		return Post{}, api.WrapError(apiErr, "Failed to get blog post page")
	}

	body, err := richtext.Render(post.Fields.Defined.Content)
	if err != nil {
		log.WithField("slug", slug).WithError(err).Warn("Failed to render blog post body, showing placeholder copy")
		body = ""
	}

	return Post{
		Chrome: u.chrome(),
		Post: PostPage{
			PostCard: toPostCard(post),
			HasImage: post.Fields.Defined.FeaturedImage.URL() != "",
			Body:     body,
		},
	}, nil
}

func (u Usecase) NotFound(message string) NotFound {
	return NotFound{
		Chrome:  u.chrome(),
		Message: message,
	}
}
