package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

type userService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

// NewUserService returns the admin-facing account service.
func NewUserService(users ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{users: users, log: log}
}

// SetRole flips the admin flag on a user record. Because authorization always
// re-reads the store, the change takes effect on the target user's next
// request without invalidating their outstanding tokens.
func (s *userService) SetRole(ctx context.Context, userID string, isAdmin bool) (*domain.User, error) {
	user, err := s.users.SetAdmin(ctx, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Bool("is_admin", isAdmin).Msg("user role updated")
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
