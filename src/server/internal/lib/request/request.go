package request

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/castel-site/src/server/internal/errors/api"
	"github.com/veedubyou/castel-site/src/shared/lib/env"
)

const (
	BadLimitCode = api.ErrorCode("bad_limit")
	BadFlagCode  = api.ErrorCode("bad_flag")

	MaxLimit = 1000
)

func Context(c echo.Context) context.Context {
	switch env.Get() {
	case env.Production, env.Test:
		return c.Request().Context()

	case env.Development:
		// opt to not use the request context in development situations
		// to avoid timeouts during debugging
		return context.Background()

	default:
		panic("Unrecognized environment")
	}
}

// Limit reads the limit query param. Missing, zero and negative values
// all mean "use the default", which the usecases resolve
func Limit(c echo.Context) (int, *api.Error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		err = errors.Wrapf(err, "Limit %q is not a number", raw)
		return 0, api.CommitError(err, BadLimitCode, "The limit has to be a whole number")
	}

	if limit > MaxLimit {
		err := errors.Newf("Limit %d is above %d", limit, MaxLimit)
		return 0, api.CommitError(err, BadLimitCode, "The limit can be at most 1000")
	}

	return limit, nil
}

// Flag reads a boolean query param, absent means false
func Flag(c echo.Context, name string) (bool, *api.Error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		err = errors.Wrapf(err, "Flag %s=%q is not a boolean", name, raw)
		return false, api.CommitError(err, BadFlagCode, "The "+name+" parameter has to be true or false")
	}

	return value, nil
}
