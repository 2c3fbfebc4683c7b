package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/service"
)

func invokeAuth(t *testing.T, tokens *service.TokenService, header string) (echo.Context, error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := Auth(tokens)(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return c, err, called
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	signed, err := tokens.Issue(&domain.User{ID: "user-1", Email: "alice@example.com", IsAdmin: true})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, err, called := invokeAuth(t, tokens, "Bearer "+signed)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatalf("handler was not invoked")
	}
	if got, _ := c.Get("user_id").(string); got != "user-1" {
		t.Fatalf("user_id in context %q, want user-1", got)
	}
	if got, _ := c.Get("email").(string); got != "alice@example.com" {
		t.Fatalf("email in context %q", got)
	}
	if isAdmin, _ := c.Get("is_admin").(bool); !isAdmin {
		t.Fatalf("is_admin claim not propagated")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	_, err, called := invokeAuth(t, tokens, "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
	if called {
		t.Fatalf("handler must not run without a token")
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	for _, header := range []string{"Basic abc", "Bearer", "just-a-token"} {
		_, err, called := invokeAuth(t, tokens, header)
		assertHTTPStatus(t, err, http.StatusUnauthorized)
		if called {
			t.Fatalf("header %q: handler must not run", header)
		}
	}
}

func TestAuth_ForgedToken(t *testing.T) {
	issuer := service.NewTokenService("other-secret", time.Hour)
	signed, err := issuer.Issue(&domain.User{ID: "user-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	tokens := service.NewTokenService("secret", time.Hour)
	_, verr, called := invokeAuth(t, tokens, "Bearer "+signed)
	assertHTTPStatus(t, verr, http.StatusUnauthorized)
	if called {
		t.Fatalf("handler must not run with a forged token")
	}
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Fatalf("status %d, want %d", httpErr.Code, want)
	}
}
