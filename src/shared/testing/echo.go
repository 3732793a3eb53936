package testlib

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func PrepareEchoContext(request *http.Request, response http.ResponseWriter) echo.Context {
	e := echo.New()
	return e.NewContext(request, response)
}

// PrepareEchoContextWithParams also fills the route params a router would have matched
func PrepareEchoContextWithParams(request *http.Request, response http.ResponseWriter, params map[string]string) echo.Context {
	c := PrepareEchoContext(request, response)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}

	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}
