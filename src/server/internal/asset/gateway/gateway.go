package assetgateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/castel-site/src/server/internal/asset/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/errors/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/lib/request"
)

type Gateway struct {
	usecase assetusecase.Usecase
}

func NewGateway(usecase assetusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) GetScript(c echo.Context, name string) error {
	ctx := request.Context(c)

	contents, apiErr := g.usecase.GetScript(ctx, name)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	// versioned path, the contents never change
	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	return c.Blob(http.StatusOK, assetusecase.ScriptContentType+"; charset=utf-8", contents)
}
