package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// requireUserID extracts the authenticated subject id injected by the Auth
// middleware. Presence proves the middleware ran; a protected handler must
// never execute without an identity bound to the request.
func requireUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
