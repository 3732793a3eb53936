package tourgateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/castel-site/src/server/internal/errors/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/lib/request"
	"github.com/veedubyou/castel-site/src/server/internal/tour/usecase"
)

type Gateway struct {
	usecase tourusecase.Usecase
}

func NewGateway(usecase tourusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) GetTourDates(c echo.Context) error {
	ctx := request.Context(c)

	limit, apiErr := request.Limit(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	upcoming, apiErr := request.Flag(c, "upcoming")
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	if upcoming {
		return c.JSON(http.StatusOK, g.usecase.GetUpcomingTourDates(ctx, limit))
	}

	return c.JSON(http.StatusOK, g.usecase.GetTourDates(ctx, limit))
}
