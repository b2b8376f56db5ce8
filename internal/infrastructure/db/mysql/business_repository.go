package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/launchhub/business-portal/internal/core/domain"
)

type businessRecord struct {
	ID          uint   `gorm:"primaryKey"`
	OwnerID     uint   `gorm:"index;not null"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Website     string `gorm:"size:512"`
	LogoURL     string `gorm:"size:512"`
	Archived    bool   `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (businessRecord) TableName() string { return "businesses" }

func (r *businessRecord) toDomain() *domain.Business {
	return &domain.Business{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
		LogoURL:     r.LogoURL,
		Archived:    r.Archived,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// BusinessRepository is the GORM-backed business store.
type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	rec := businessRecord{
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Website:     b.Website,
		LogoURL:     b.LogoURL,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert business: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id uint) (*domain.Business, error) {
	var rec businessRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *BusinessRepository) List(ctx context.Context, includeArchived bool) ([]domain.Business, error) {
	q := r.db.WithContext(ctx).Order("name")
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	var recs []businessRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	out := make([]domain.Business, 0, len(recs))
	for i := range recs {
		out = append(out, *recs[i].toDomain())
	}
	return out, nil
}

func (r *BusinessRepository) Update(ctx context.Context, b *domain.Business) error {
	res := r.db.WithContext(ctx).Model(&businessRecord{ID: b.ID}).Updates(map[string]any{
		"name":        b.Name,
		"description": b.Description,
		"website":     b.Website,
		"logo_url":    b.LogoURL,
		"archived":    b.Archived,
	})
	if res.Error != nil {
		return fmt.Errorf("update business: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}
