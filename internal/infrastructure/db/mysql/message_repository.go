package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/launchhub/business-portal/internal/core/domain"
)

type messageRecord struct {
	ID          uint   `gorm:"primaryKey"`
	SenderID    uint   `gorm:"index;not null"`
	RecipientID uint   `gorm:"index;not null"`
	Subject     string `gorm:"size:255"`
	Body        string `gorm:"type:text"`
	ReadAt      *time.Time
	CreatedAt   time.Time
}

func (messageRecord) TableName() string { return "messages" }

func (r *messageRecord) toDomain() *domain.Message {
	m := &domain.Message{
		ID:          r.ID,
		SenderID:    r.SenderID,
		RecipientID: r.RecipientID,
		Subject:     r.Subject,
		Body:        r.Body,
		CreatedAt:   r.CreatedAt,
	}
	if r.ReadAt != nil {
		m.ReadAt = *r.ReadAt
	}
	return m
}

// MessageRepository is the GORM-backed message store.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	rec := messageRecord{
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Subject:     m.Subject,
		Body:        m.Body,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id uint) (*domain.Message, error) {
	var rec messageRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *MessageRepository) ListByRecipient(ctx context.Context, recipientID uint) ([]domain.Message, error) {
	var recs []messageRecord
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	out := make([]domain.Message, 0, len(recs))
	for i := range recs {
		out = append(out, *recs[i].toDomain())
	}
	return out, nil
}

func (r *MessageRepository) Update(ctx context.Context, m *domain.Message) error {
	updates := map[string]any{}
	if !m.ReadAt.IsZero() {
		updates["read_at"] = m.ReadAt
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&messageRecord{ID: m.ID}).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}
