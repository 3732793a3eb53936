package releasegateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/castel-site/src/server/internal/errors/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/lib/request"
	"github.com/veedubyou/castel-site/src/server/internal/release/usecase"
)

type Gateway struct {
	usecase releaseusecase.Usecase
}

func NewGateway(usecase releaseusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

// GetMusicReleases serves ?featured=true from the featured releases instead
func (g Gateway) GetMusicReleases(c echo.Context) error {
	ctx := request.Context(c)

	limit, apiErr := request.Limit(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	featured, apiErr := request.Flag(c, "featured")
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	if featured {
		return c.JSON(http.StatusOK, g.usecase.GetFeaturedReleases(ctx, limit))
	}

	return c.JSON(http.StatusOK, g.usecase.GetMusicReleases(ctx, limit))
}
