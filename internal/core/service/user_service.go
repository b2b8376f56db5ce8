package service

import (
	"context"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// UserService implements account administration and self-service profile
// edits.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UpdateProfile applies the non-nil fields of input to the user's own
// profile. Callers re-issue the session afterwards so the embedded snapshot
// stays fresh.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, input ports.ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.State != nil {
		user.State = *input.State
	}
	if input.Zip != nil {
		user.Zip = *input.Zip
	}
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}
	if input.OptOut != nil {
		user.OptedOut = *input.OptOut
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateAccess changes a user's role or permission flags. Admin-only at the
// HTTP edge.
func (s *UserService) UpdateAccess(ctx context.Context, id uint, input ports.AccessUpdateInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.CanApproveRequests != nil {
		user.CanApproveRequests = *input.CanApproveRequests
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
