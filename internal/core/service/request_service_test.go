package service

import (
	"context"
	"errors"
	"testing"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

func submitRequest(t *testing.T, svc *RequestService, email string) *domain.AccountRequest {
	t.Helper()
	req, err := svc.Submit(context.Background(), ports.SignupInput{
		Name:     "Dana Fox",
		Email:    email,
		Phone:    "555-0104",
		Password: "pass-phrase-1",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return req
}

func TestRequestService_Submit(t *testing.T) {
	users := newMemUserRepo()
	svc := NewRequestService(users, newMemRequestRepo())

	req := submitRequest(t, svc, "dana@example.com")
	if req.Status != domain.RequestPending {
		t.Fatalf("expected pending request, got %q", req.Status)
	}

	user, err := users.FindByEmail(context.Background(), "dana@example.com")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if user.Approved {
		t.Fatalf("signup must not activate the account")
	}
	if user.Role != domain.RoleExternal {
		t.Fatalf("expected external role, got %q", user.Role)
	}
	if user.PasswordHash == "pass-phrase-1" {
		t.Fatalf("password must be stored hashed")
	}
	if err := VerifyPassword("pass-phrase-1", user.PasswordHash); err != nil {
		t.Fatalf("stored hash must verify: %v", err)
	}
}

func TestRequestService_SubmitDuplicateEmail(t *testing.T) {
	svc := NewRequestService(newMemUserRepo(), newMemRequestRepo())
	submitRequest(t, svc, "dana@example.com")

	_, err := svc.Submit(context.Background(), ports.SignupInput{
		Name:     "Dana Again",
		Email:    "dana@example.com",
		Password: "another-pass",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRequestService_Approve(t *testing.T) {
	users := newMemUserRepo()
	svc := NewRequestService(users, newMemRequestRepo())
	req := submitRequest(t, svc, "dana@example.com")

	if err := svc.Approve(context.Background(), req.ID, domain.RoleInternal, 99); err != nil {
		t.Fatalf("approve: %v", err)
	}

	user, err := users.FindByID(context.Background(), req.UserID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if !user.Approved || user.Role != domain.RoleInternal {
		t.Fatalf("expected approved internal user, got approved=%v role=%q", user.Approved, user.Role)
	}

	pending, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("decided request must leave the pending list, got %d", len(pending))
	}
}

func TestRequestService_ApproveInvalidRole(t *testing.T) {
	svc := NewRequestService(newMemUserRepo(), newMemRequestRepo())
	req := submitRequest(t, svc, "dana@example.com")

	if err := svc.Approve(context.Background(), req.ID, domain.Role("superuser"), 99); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRequestService_Deny(t *testing.T) {
	users := newMemUserRepo()
	requests := newMemRequestRepo()
	svc := NewRequestService(users, requests)
	req := submitRequest(t, svc, "dana@example.com")

	if err := svc.Deny(context.Background(), req.ID, "incomplete details", 99); err != nil {
		t.Fatalf("deny: %v", err)
	}

	denied, err := requests.FindByID(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("find request: %v", err)
	}
	if denied.Status != domain.RequestDenied || denied.Note != "incomplete details" || denied.DecidedBy != 99 {
		t.Fatalf("unexpected denied request: %+v", denied)
	}

	user, err := users.FindByID(context.Background(), req.UserID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if user.Approved {
		t.Fatalf("denied user must stay unapproved")
	}
}

func TestRequestService_DecideTwice(t *testing.T) {
	svc := NewRequestService(newMemUserRepo(), newMemRequestRepo())
	req := submitRequest(t, svc, "dana@example.com")

	if err := svc.Approve(context.Background(), req.ID, domain.RoleExternal, 99); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := svc.Deny(context.Background(), req.ID, "changed my mind", 99); !errors.Is(err, domain.ErrRequestDecided) {
		t.Fatalf("expected ErrRequestDecided, got %v", err)
	}
	if err := svc.Approve(context.Background(), req.ID, domain.RoleAdmin, 99); !errors.Is(err, domain.ErrRequestDecided) {
		t.Fatalf("expected ErrRequestDecided, got %v", err)
	}
}

func TestRequestService_UnknownRequest(t *testing.T) {
	svc := NewRequestService(newMemUserRepo(), newMemRequestRepo())
	if err := svc.Approve(context.Background(), 404, domain.RoleExternal, 99); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}
