package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// UserService defines the admin-facing account operations.
type UserService interface {
	// SetRole flips the admin flag. The change is effective on the next
	// authorization check; outstanding tokens are not invalidated.
	SetRole(ctx context.Context, userID string, isAdmin bool) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
