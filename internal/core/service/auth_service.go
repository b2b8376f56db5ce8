package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// AuthService implements credential verification for login.
type AuthService struct {
	users    ports.UserRepository
	throttle ports.LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, throttle ports.LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, throttle: throttle, log: log}
}

// Login verifies the email/password pair. An unknown email and a wrong
// password both yield domain.ErrInvalidCredentials and both count against the
// email's failure budget, so callers cannot learn whether an account exists.
// Database failures are logged and collapsed to the same generic error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	tripped, err := s.throttle.TooMany(ctx, email)
	if err != nil {
		// A throttle outage must not lock everyone out.
		s.log.Warn().Err(err).Msg("login throttle unavailable")
	} else if tripped {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.throttle.RecordFailure(ctx, email)
		} else {
			s.log.Error().Err(err).Msg("login lookup failed")
		}
		return nil, domain.ErrInvalidCredentials
	}

	if err := VerifyPassword(password, user.PasswordHash); err != nil {
		_ = s.throttle.RecordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Approved {
		return nil, domain.ErrAccountPending
	}

	_ = s.throttle.Reset(ctx, email)
	return user, nil
}
