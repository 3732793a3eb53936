package gateway

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/castel-site/src/server/api_error"
	"github.com/veedubyou/castel-site/src/server/internal/asset/errors"
	"github.com/veedubyou/castel-site/src/server/internal/blog/errors"
	"github.com/veedubyou/castel-site/src/server/internal/contact/errors"
	"github.com/veedubyou/castel-site/src/server/internal/errors/api"
	"github.com/veedubyou/castel-site/src/server/internal/lib/request"
)

var httpStatusCodeMap = map[api.ErrorCode]int{
	api.DefaultErrorCode:                 http.StatusInternalServerError,
	request.BadLimitCode:                 http.StatusBadRequest,
	request.BadFlagCode:                  http.StatusBadRequest,
	blogerrors.PostNotFoundCode:          http.StatusNotFound,
	contacterrors.BadContactDataCode:     http.StatusBadRequest,
	contacterrors.TooManySubmissionsCode: http.StatusTooManyRequests,
	contacterrors.RelayFailedCode:        http.StatusBadGateway,
	asseterrors.ScriptNotFoundCode:       http.StatusNotFound,
	asseterrors.ScriptUnavailableCode:    http.StatusBadGateway,
}

func StatusCode(err *api.Error) int {
	statusCode, ok := httpStatusCodeMap[err.ErrorCode]
	if !ok {
		msg := fmt.Sprintf("Error code %s has no HTTP status code mapping", err.ErrorCode)
		panic(msg)
	}

	return statusCode
}

func ErrorResponse(c echo.Context, err *api.Error) error {
	return c.JSON(StatusCode(err), api_error.JSONAPIError{
		Code:         string(err.ErrorCode),
		Msg:          err.UserMessage,
		ErrorDetails: err.Error(),
	})
}
