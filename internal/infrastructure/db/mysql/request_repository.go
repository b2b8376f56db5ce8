package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/launchhub/business-portal/internal/core/domain"
)

type accountRequestRecord struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Status    string `gorm:"size:16;not null;default:'pending';index"`
	Note      string `gorm:"size:512"`
	DecidedBy uint
	DecidedAt *time.Time
	CreatedAt time.Time
}

func (accountRequestRecord) TableName() string { return "account_requests" }

func (r *accountRequestRecord) toDomain() *domain.AccountRequest {
	req := &domain.AccountRequest{
		ID:        r.ID,
		UserID:    r.UserID,
		Status:    r.Status,
		Note:      r.Note,
		DecidedBy: r.DecidedBy,
		CreatedAt: r.CreatedAt,
	}
	if r.DecidedAt != nil {
		req.DecidedAt = *r.DecidedAt
	}
	return req
}

// AccountRequestRepository is the GORM-backed account-request store.
type AccountRequestRepository struct {
	db *gorm.DB
}

func NewAccountRequestRepository(db *gorm.DB) *AccountRequestRepository {
	return &AccountRequestRepository{db: db}
}

func (r *AccountRequestRepository) Create(ctx context.Context, req *domain.AccountRequest) (*domain.AccountRequest, error) {
	rec := accountRequestRecord{
		UserID: req.UserID,
		Status: req.Status,
		Note:   req.Note,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert account request: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *AccountRequestRepository) FindByID(ctx context.Context, id uint) (*domain.AccountRequest, error) {
	var rec accountRequestRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find account request: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *AccountRequestRepository) ListPending(ctx context.Context) ([]domain.AccountRequest, error) {
	var recs []accountRequestRecord
	if err := r.db.WithContext(ctx).
		Where("status = ?", domain.RequestPending).
		Order("created_at").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	out := make([]domain.AccountRequest, 0, len(recs))
	for i := range recs {
		out = append(out, *recs[i].toDomain())
	}
	return out, nil
}

func (r *AccountRequestRepository) Update(ctx context.Context, req *domain.AccountRequest) error {
	updates := map[string]any{
		"status":     req.Status,
		"note":       req.Note,
		"decided_by": req.DecidedBy,
	}
	if !req.DecidedAt.IsZero() {
		updates["decided_at"] = req.DecidedAt
	}
	res := r.db.WithContext(ctx).Model(&accountRequestRecord{ID: req.ID}).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update account request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}
