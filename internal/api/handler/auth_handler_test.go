package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, name, email, password string) (*ports.AuthResult, error) {
			if name != "Alice" || email != "alice@example.com" || password != "pass12345" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &ports.AuthResult{
				User:  &domain.User{ID: "user-1", Name: name, Email: email},
				Token: "token-abc",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/signup",
		`{"name":"Alice","email":"alice@example.com","password":"pass12345"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["success"] != true {
		t.Fatalf("expected success envelope, got %v", envelope)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["userId"] != "user-1" || data["token"] != "token-abc" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for name, body := range map[string]string{
		"bad email":      `{"name":"Alice","email":"not-an-email","password":"pass12345"}`,
		"short password": `{"name":"Alice","email":"a@example.com","password":"short"}`,
		"missing name":   `{"email":"a@example.com","password":"pass12345"}`,
	} {
		c, _ := newTestContext(t, http.MethodPost, "/api/signup", body)
		err := h.Signup(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", name, err)
		}
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/signup",
		`{"name":"Alice","email":"alice@example.com","password":"pass12345"}`)
	if err := h.Signup(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to bubble up, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				User:  &domain.User{ID: "user-1", Email: email, IsAdmin: true},
				Token: "token-xyz",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"pass12345"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	data, _ := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["token"] != "token-xyz" || data["isAdmin"] != true {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"wrong-pass"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to bubble up, got %v", err)
	}
}
