package ports

import (
	"context"

	"github.com/launchhub/business-portal/internal/core/domain"
)

// ProfileUpdateInput carries the self-service editable profile fields.
// Nil pointers mean "leave unchanged".
type ProfileUpdateInput struct {
	Name     *string
	Phone    *string
	Address  *string
	City     *string
	State    *string
	Zip      *string
	PhotoURL *string
	OptOut   *bool
}

// AccessUpdateInput carries the admin-editable authorization fields.
type AccessUpdateInput struct {
	Role               *domain.Role
	CanApproveRequests *bool
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	Get(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id uint, input ProfileUpdateInput) (*domain.User, error)
	UpdateAccess(ctx context.Context, id uint, input AccessUpdateInput) (*domain.User, error)
}
