package ports

import (
	"context"

	"github.com/launchhub/business-portal/internal/core/domain"
)

// AuthService verifies credentials for login.
type AuthService interface {
	// Login returns the matching approved user, or
	// domain.ErrInvalidCredentials for both an unknown email and a wrong
	// password.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// LoginThrottle rate-limits failed login attempts per email.
type LoginThrottle interface {
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
