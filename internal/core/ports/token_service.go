package ports

import "github.com/pressroom/publishing-api/internal/core/domain"

// TokenClaims is the identity data carried by a session token. IsAdmin is a
// snapshot from issuance time; authorization decisions must re-read the role
// from the store rather than trust it.
type TokenClaims struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// TokenService issues and verifies signed, stateless session tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns domain.ErrInvalidToken for malformed, forged and expired
	// tokens alike.
	Verify(token string) (*TokenClaims, error)
}
