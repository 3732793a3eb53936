package contactgateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/veedubyou/castel-site/src/server/internal/contact/errors"
	"github.com/veedubyou/castel-site/src/server/internal/contact/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/errors/api"
	"github.com/veedubyou/castel-site/src/server/internal/errors/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/lib/request"
	"github.com/veedubyou/castel-site/src/shared/contact/entity"
)

type Gateway struct {
	usecase contactusecase.Usecase
}

func NewGateway(usecase contactusecase.Usecase) Gateway {
	return Gateway{
		usecase: usecase,
	}
}

func (g Gateway) Submit(c echo.Context) error {
	ctx := request.Context(c)

	submission := contactentity.Submission{}
	if err := c.Bind(&submission); err != nil {
		err = errors.Wrap(err, "Failed to bind request body to submission")
		apiErr := api.CommitError(err,
			contacterrors.BadContactDataCode,
			"The message couldn't be read, please try again")
		return gateway.ErrorResponse(c, apiErr)
	}

	receipt, apiErr := g.usecase.Submit(ctx, c.RealIP(), submission)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	return c.JSON(http.StatusOK, receipt)
}
