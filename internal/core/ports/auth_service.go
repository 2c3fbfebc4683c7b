package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// AuthResult is returned by both registration and login.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
