package pagegateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/castel-site/src/server/internal/errors/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/lib/request"
	"github.com/veedubyou/castel-site/src/server/internal/page/render"
	"github.com/veedubyou/castel-site/src/server/internal/page/usecase"
)

const notFoundMessage = "The page you're looking for doesn't exist"

type Gateway struct {
	usecase pageusecase.Usecase
}

func NewGateway(usecase pageusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) Landing(c echo.Context) error {
	ctx := request.Context(c)
	return c.Render(http.StatusOK, render.LandingPage, g.usecase.Landing(ctx))
}

func (g Gateway) BlogIndex(c echo.Context) error {
	ctx := request.Context(c)
	return c.Render(http.StatusOK, render.BlogIndexPage, g.usecase.BlogIndex(ctx))
}

func (g Gateway) BlogPost(c echo.Context, slug string) error {
	ctx := request.Context(c)

	post, apiErr := g.usecase.BlogPost(ctx, slug)
	if apiErr != nil {
		notFound := g.usecase.NotFound(apiErr.UserMessage)
		return c.Render(gateway.StatusCode(apiErr), render.NotFoundPage, notFound)
	}

	return c.Render(http.StatusOK, render.BlogPostPage, post)
}

func (g Gateway) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, render.NotFoundPage, g.usecase.NotFound(notFoundMessage))
}
