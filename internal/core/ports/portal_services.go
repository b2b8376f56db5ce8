package ports

import (
	"context"
	"io"
	"time"

	"github.com/launchhub/business-portal/internal/core/domain"
)

// SignupInput carries a self-service account request.
type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// RequestService handles the account-request lifecycle.
type RequestService interface {
	Submit(ctx context.Context, input SignupInput) (*domain.AccountRequest, error)
	ListPending(ctx context.Context) ([]domain.AccountRequest, error)
	// Approve activates the requesting user with the given role.
	Approve(ctx context.Context, requestID uint, role domain.Role, reviewerID uint) error
	Deny(ctx context.Context, requestID uint, note string, reviewerID uint) error
}

// MessageService handles direct messaging between users.
type MessageService interface {
	Send(ctx context.Context, senderID, recipientID uint, subject, body string) (*domain.Message, error)
	Inbox(ctx context.Context, userID uint) ([]domain.Message, error)
	MarkRead(ctx context.Context, userID, messageID uint) error
}

// CompetitionInput carries the fields needed to create a competition.
type CompetitionInput struct {
	Title       string
	Description string
	Deadline    time.Time
}

// EntryInput carries one user's competition submission.
type EntryInput struct {
	CompetitionID uint
	EntrantID     uint
	PitchSummary  string
	DeckURL       string
}

// CompetitionService handles pitch competitions and entries.
type CompetitionService interface {
	Create(ctx context.Context, input CompetitionInput) (*domain.Competition, error)
	List(ctx context.Context) ([]domain.Competition, error)
	Enter(ctx context.Context, input EntryInput) (*domain.Entry, error)
	Entries(ctx context.Context, competitionID uint) ([]domain.Entry, error)
	// CloseExpired marks competitions past their deadline as closed and
	// returns how many were closed.
	CloseExpired(ctx context.Context, now time.Time) (int, error)
}

// BusinessInput carries the editable business profile fields.
type BusinessInput struct {
	Name        string
	Description string
	Website     string
	LogoURL     string
}

// BusinessService handles business profiles. Profiles are archived, never
// deleted.
type BusinessService interface {
	Create(ctx context.Context, ownerID uint, input BusinessInput) (*domain.Business, error)
	Get(ctx context.Context, id uint) (*domain.Business, error)
	List(ctx context.Context, includeArchived bool) ([]domain.Business, error)
	Update(ctx context.Context, id uint, input BusinessInput) (*domain.Business, error)
	Archive(ctx context.Context, id uint) error
}

// BlobStore is the opaque upload collaborator: it stores a blob and returns
// a publicly addressable URL.
type BlobStore interface {
	Put(ctx context.Context, filename string, r io.Reader) (string, error)
}

// UploadService accepts user file uploads and hands them to the blob store.
type UploadService interface {
	Store(ctx context.Context, filename string, r io.Reader) (string, error)
}
