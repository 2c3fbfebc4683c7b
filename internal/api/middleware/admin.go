package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

// AdminOnly gates a route to admin users. The role is re-read from the store
// on every request rather than trusted from the token's is_admin claim, so a
// role change takes effect without forcing the user to log in again.
//
// Must run after Auth; the 403 here is distinct from Auth's 401 so callers can
// tell "who are you" apart from "you may not do that".
func AdminOnly(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "only admin users can access this resource")
				}
				// Storage failure, not an authorization verdict; let the
				// central handler render it.
				return err
			}
			if !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "only admin users can access this resource")
			}

			return next(c)
		}
	}
}
