package service

import (
	"context"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// BusinessService implements business-profile management. Profiles are
// archived, never deleted.
type BusinessService struct {
	businesses ports.BusinessRepository
	users      ports.UserRepository
}

func NewBusinessService(businesses ports.BusinessRepository, users ports.UserRepository) *BusinessService {
	return &BusinessService{businesses: businesses, users: users}
}

// Create adds a profile for the owner and flips the owner's has-business
// flag.
func (s *BusinessService) Create(ctx context.Context, ownerID uint, input ports.BusinessInput) (*domain.Business, error) {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	b, err := s.businesses.Create(ctx, &domain.Business{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Website:     input.Website,
		LogoURL:     input.LogoURL,
	})
	if err != nil {
		return nil, err
	}

	if !owner.HasBusiness {
		owner.HasBusiness = true
		if err := s.users.Update(ctx, owner); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (s *BusinessService) Get(ctx context.Context, id uint) (*domain.Business, error) {
	return s.businesses.FindByID(ctx, id)
}

func (s *BusinessService) List(ctx context.Context, includeArchived bool) ([]domain.Business, error) {
	return s.businesses.List(ctx, includeArchived)
}

func (s *BusinessService) Update(ctx context.Context, id uint, input ports.BusinessInput) (*domain.Business, error) {
	b, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		b.Name = input.Name
	}
	b.Description = input.Description
	b.Website = input.Website
	if input.LogoURL != "" {
		b.LogoURL = input.LogoURL
	}

	if err := s.businesses.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BusinessService) Archive(ctx context.Context, id uint) error {
	b, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Archived {
		return nil
	}
	b.Archived = true
	return s.businesses.Update(ctx, b)
}
