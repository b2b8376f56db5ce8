package ports

import (
	"context"
	"time"

	"github.com/launchhub/business-portal/internal/core/domain"
)

// AccountRequestRepository persists self-service account requests.
type AccountRequestRepository interface {
	Create(ctx context.Context, req *domain.AccountRequest) (*domain.AccountRequest, error)
	FindByID(ctx context.Context, id uint) (*domain.AccountRequest, error)
	ListPending(ctx context.Context) ([]domain.AccountRequest, error)
	Update(ctx context.Context, req *domain.AccountRequest) error
}

// BusinessRepository persists business profiles.
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	FindByID(ctx context.Context, id uint) (*domain.Business, error)
	List(ctx context.Context, includeArchived bool) ([]domain.Business, error)
	Update(ctx context.Context, b *domain.Business) error
}

// MessageRepository persists direct messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id uint) (*domain.Message, error)
	ListByRecipient(ctx context.Context, recipientID uint) ([]domain.Message, error)
	Update(ctx context.Context, m *domain.Message) error
}

// CompetitionRepository persists pitch competitions and their entries.
type CompetitionRepository interface {
	Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error)
	FindByID(ctx context.Context, id uint) (*domain.Competition, error)
	List(ctx context.Context) ([]domain.Competition, error)
	Update(ctx context.Context, c *domain.Competition) error
	// ListExpiredOpen returns competitions past their deadline that are
	// not yet marked closed.
	ListExpiredOpen(ctx context.Context, now time.Time) ([]domain.Competition, error)

	CreateEntry(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	FindEntry(ctx context.Context, competitionID, entrantID uint) (*domain.Entry, error)
	ListEntries(ctx context.Context, competitionID uint) ([]domain.Entry, error)
}
