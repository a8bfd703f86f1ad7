package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUsername extracts the username injected by the Auth middleware and
// fast-fails before any service call when it is absent — a request that
// reaches a protected handler without it bypassed the gate somehow.
func ctxUsername(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
