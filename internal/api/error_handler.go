package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// failureResponse is the canonical error envelope for all API failures:
// {"success": false, "message": "<reason>"}.
type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their taxonomy status codes (401/403/404/409).
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent JSON envelope {"success": false, "message": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, failureResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "name, email and password are required"
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Same wording for "no such account" and "wrong
		// password" so the login path cannot be used to enumerate accounts.
		return http.StatusUnauthorized, "wrong details, please check your credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrAdminRequired):
		return http.StatusForbidden, "only admin users can access this resource"
	case errors.Is(err, domain.ErrNotArticleAuthor):
		return http.StatusForbidden, "unauthorized to delete this article"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound, "article not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, domain.ErrAlreadyLiked):
		return http.StatusConflict, "you have already liked this article"
	}

	// Unexpected error (storage failures included): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "something went wrong"
}
