package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/launchhub/business-portal/internal/core/domain"
)

type competitionRecord struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Deadline    time.Time
	Closed      bool `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (competitionRecord) TableName() string { return "competitions" }

type entryRecord struct {
	ID            uint   `gorm:"primaryKey"`
	CompetitionID uint   `gorm:"not null;uniqueIndex:idx_comp_entrant"`
	EntrantID     uint   `gorm:"not null;uniqueIndex:idx_comp_entrant"`
	PitchSummary  string `gorm:"type:text"`
	DeckURL       string `gorm:"size:512"`
	CreatedAt     time.Time
}

func (entryRecord) TableName() string { return "competition_entries" }

func (r *competitionRecord) toDomain() *domain.Competition {
	return &domain.Competition{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
		Closed:      r.Closed,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *entryRecord) toDomain() *domain.Entry {
	return &domain.Entry{
		ID:            r.ID,
		CompetitionID: r.CompetitionID,
		EntrantID:     r.EntrantID,
		PitchSummary:  r.PitchSummary,
		DeckURL:       r.DeckURL,
		CreatedAt:     r.CreatedAt,
	}
}

// CompetitionRepository is the GORM-backed store for competitions and their
// entries.
type CompetitionRepository struct {
	db *gorm.DB
}

func NewCompetitionRepository(db *gorm.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error) {
	rec := competitionRecord{
		Title:       c.Title,
		Description: c.Description,
		Deadline:    c.Deadline,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert competition: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CompetitionRepository) FindByID(ctx context.Context, id uint) (*domain.Competition, error) {
	var rec competitionRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("find competition: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CompetitionRepository) List(ctx context.Context) ([]domain.Competition, error) {
	var recs []competitionRecord
	if err := r.db.WithContext(ctx).Order("deadline").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	out := make([]domain.Competition, 0, len(recs))
	for i := range recs {
		out = append(out, *recs[i].toDomain())
	}
	return out, nil
}

func (r *CompetitionRepository) Update(ctx context.Context, c *domain.Competition) error {
	res := r.db.WithContext(ctx).Model(&competitionRecord{ID: c.ID}).Updates(map[string]any{
		"title":       c.Title,
		"description": c.Description,
		"deadline":    c.Deadline,
		"closed":      c.Closed,
	})
	if res.Error != nil {
		return fmt.Errorf("update competition: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCompetitionNotFound
	}
	return nil
}

func (r *CompetitionRepository) ListExpiredOpen(ctx context.Context, now time.Time) ([]domain.Competition, error) {
	var recs []competitionRecord
	if err := r.db.WithContext(ctx).
		Where("closed = ? AND deadline < ?", false, now).
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list expired competitions: %w", err)
	}
	out := make([]domain.Competition, 0, len(recs))
	for i := range recs {
		out = append(out, *recs[i].toDomain())
	}
	return out, nil
}

func (r *CompetitionRepository) CreateEntry(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	rec := entryRecord{
		CompetitionID: e.CompetitionID,
		EntrantID:     e.EntrantID,
		PitchSummary:  e.PitchSummary,
		DeckURL:       e.DeckURL,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CompetitionRepository) FindEntry(ctx context.Context, competitionID, entrantID uint) (*domain.Entry, error) {
	var rec entryRecord
	if err := r.db.WithContext(ctx).
		Where("competition_id = ? AND entrant_id = ?", competitionID, entrantID).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CompetitionRepository) ListEntries(ctx context.Context, competitionID uint) ([]domain.Entry, error) {
	var recs []entryRecord
	if err := r.db.WithContext(ctx).
		Where("competition_id = ?", competitionID).
		Order("created_at").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	out := make([]domain.Entry, 0, len(recs))
	for i := range recs {
		out = append(out, *recs[i].toDomain())
	}
	return out, nil
}
