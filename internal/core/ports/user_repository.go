package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetAdmin updates the role flag and returns the updated record.
	SetAdmin(ctx context.Context, id string, isAdmin bool) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
