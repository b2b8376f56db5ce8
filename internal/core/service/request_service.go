package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// RequestService implements the account-request lifecycle: self-service
// signup creates an unapproved user plus a pending request; a reviewer
// approves (assigning the role) or denies it.
type RequestService struct {
	users    ports.UserRepository
	requests ports.AccountRequestRepository
}

func NewRequestService(users ports.UserRepository, requests ports.AccountRequestRepository) *RequestService {
	return &RequestService{users: users, requests: requests}
}

func (s *RequestService) Submit(ctx context.Context, input ports.SignupInput) (*domain.AccountRequest, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("signup lookup: %w", err)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         domain.RoleExternal,
		Approved:     false,
	})
	if err != nil {
		return nil, err
	}

	return s.requests.Create(ctx, &domain.AccountRequest{
		UserID: user.ID,
		Status: domain.RequestPending,
	})
}

func (s *RequestService) ListPending(ctx context.Context) ([]domain.AccountRequest, error) {
	return s.requests.ListPending(ctx)
}

// Approve activates the requesting user with the given role and records the
// decision. Deciding an already-decided request fails.
func (s *RequestService) Approve(ctx context.Context, requestID uint, role domain.Role, reviewerID uint) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}

	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != domain.RequestPending {
		return domain.ErrRequestDecided
	}

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	user.Role = role
	user.Approved = true
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	req.Status = domain.RequestApproved
	req.DecidedBy = reviewerID
	req.DecidedAt = time.Now().UTC()
	return s.requests.Update(ctx, req)
}

func (s *RequestService) Deny(ctx context.Context, requestID uint, note string, reviewerID uint) error {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != domain.RequestPending {
		return domain.ErrRequestDecided
	}

	req.Status = domain.RequestDenied
	req.Note = note
	req.DecidedBy = reviewerID
	req.DecidedAt = time.Now().UTC()
	return s.requests.Update(ctx, req)
}
