package blogusecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/veedubyou/castel-site/src/server/internal/blog/errors"
	"github.com/veedubyou/castel-site/src/server/internal/errors/api"
	"github.com/veedubyou/castel-site/src/server/internal/lib/contentfetch"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/fallback"
	"github.com/veedubyou/castel-site/src/shared/content/source"
)

const (
	DefaultPostsLimit = 10
)

type Usecase struct {
	source contentsource.Source
}

// NewUsecase takes a nil source to mean the content source is unconfigured
func NewUsecase(source contentsource.Source) Usecase {
	return Usecase{
		source: source,
	}
}

// GetBlogPosts returns the newest posts first
func (u Usecase) GetBlogPosts(ctx context.Context, limit int) []contententity.BlogPost {
	limit = contentfetch.LimitOrDefault(limit, DefaultPostsLimit)

	query := contententity.NewQuery(contententity.BlogPostType).
		OrderByDesc("publishDate").
		WithLimit(limit)

	posts, _ := contentfetch.Records(ctx, u.source, query, fallback.BlogPosts)
	return contentfetch.Take(posts, limit)
}

func (u Usecase) GetBlogPost(ctx context.Context, slug string) (contententity.BlogPost, *api.Error) {
	notFound := func() *api.Error {
		err := errors.Newf("No blog post with slug %q", slug)
		return api.CommitError(err,
			blogerrors.PostNotFoundCode,
			"The blog post you're looking for doesn't exist")
	}

	if slug == "" {
		return contententity.BlogPost{}, notFound()
	}

	query := contententity.NewQuery(contententity.BlogPostType).
		Where("slug", slug).
		WithLimit(1)

	posts, _ := contentfetch.Records(ctx, u.source, query, fallback.BlogPosts)

	post, found := lo.Find(posts, func(post contententity.BlogPost) bool {
		return post.Fields.Defined.Slug == slug
	})
	if !found {
		return contententity.BlogPost{}, notFound()
	}

	return post, nil
}
