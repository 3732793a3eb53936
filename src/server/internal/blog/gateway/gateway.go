package bloggateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/castel-site/src/server/internal/blog/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/errors/api"
	"github.com/veedubyou/castel-site/src/server/internal/errors/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/lib/request"
)

type Gateway struct {
	usecase blogusecase.Usecase
}

func NewGateway(usecase blogusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) GetBlogPosts(c echo.Context) error {
	ctx := request.Context(c)

	limit, apiErr := request.Limit(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, g.usecase.GetBlogPosts(ctx, limit))
}

func (g Gateway) GetBlogPost(c echo.Context, slug string) error {
	ctx := request.Context(c)

	post, apiErr := g.usecase.GetBlogPost(ctx, slug)
	if apiErr != nil {
		apiErr = api.WrapError(apiErr, "Failed to get blog post")
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, post)
}
