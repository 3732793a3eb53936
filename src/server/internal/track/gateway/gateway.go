package trackgateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/castel-site/src/server/internal/lib/request"
	"github.com/veedubyou/castel-site/src/server/internal/track/usecase"
)

type Gateway struct {
	usecase trackusecase.Usecase
}

func NewGateway(usecase trackusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) GetTracks(c echo.Context) error {
	ctx := request.Context(c)
	return c.JSON(http.StatusOK, g.usecase.GetTracks(ctx))
}
