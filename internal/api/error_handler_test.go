package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrorTaxonomy(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrAdminRequired, http.StatusForbidden},
		{domain.ErrNotArticleAuthor, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrArticleNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrAlreadyLiked, http.StatusConflict},
	}

	for _, tc := range cases {
		code, body := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: status %d, want %d", tc.err, code, tc.code)
		}
		if body["success"] != false {
			t.Fatalf("%v: expected success=false envelope, got %v", tc.err, body)
		}
		if body["message"] == "" {
			t.Fatalf("%v: empty message", tc.err)
		}
	}
}

// Wrapped domain errors must still resolve to their taxonomy codes.
func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	code, _ := renderError(t, fmt.Errorf("create article: %w", domain.ErrUserNotFound))
	if code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "token was not provided"))
	if code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", code)
	}
	if body["message"] != "token was not provided" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

// Unexpected errors never leak internals to the client.
func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", code)
	}
	if body["message"] != "something went wrong" {
		t.Fatalf("internal details leaked: %v", body["message"])
	}
}
