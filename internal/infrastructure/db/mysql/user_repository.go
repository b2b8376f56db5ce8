package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/launchhub/business-portal/internal/core/domain"
)

type userRecord struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:255;not null"`
	Phone              string `gorm:"size:32"`
	Email              string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash       string `gorm:"size:255;not null"`
	Role               string `gorm:"size:16;not null;default:'external'"`
	Approved           bool
	HasBusiness        bool
	OptedOut           bool
	CanApproveRequests bool
	Address            string `gorm:"size:255"`
	City               string `gorm:"size:128"`
	State              string `gorm:"size:64"`
	Zip                string `gorm:"size:16"`
	PhotoURL           string `gorm:"size:512"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:                 r.ID,
		Name:               r.Name,
		Phone:              r.Phone,
		Email:              r.Email,
		PasswordHash:       r.PasswordHash,
		Role:               domain.Role(r.Role),
		Approved:           r.Approved,
		HasBusiness:        r.HasBusiness,
		OptedOut:           r.OptedOut,
		CanApproveRequests: r.CanApproveRequests,
		Address:            r.Address,
		City:               r.City,
		State:              r.State,
		Zip:                r.Zip,
		PhotoURL:           r.PhotoURL,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func userToRecord(u *domain.User) *userRecord {
	return &userRecord{
		ID:                 u.ID,
		Name:               u.Name,
		Phone:              u.Phone,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		Role:               string(u.Role),
		Approved:           u.Approved,
		HasBusiness:        u.HasBusiness,
		OptedOut:           u.OptedOut,
		CanApproveRequests: u.CanApproveRequests,
		Address:            u.Address,
		City:               u.City,
		State:              u.State,
		Zip:                u.Zip,
		PhotoURL:           u.PhotoURL,
	}
}

// UserRepository is the GORM-backed user store.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	rec := userToRecord(user)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return rec.toDomain(), nil
}

// FindByEmail matches the email column exactly; the column uses a
// case-sensitive binary comparison so lookups never fold case.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).Where("BINARY email = ?", email).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]domain.User, 0, len(recs))
	for i := range recs {
		users = append(users, *recs[i].toDomain())
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	rec := userToRecord(user)
	res := r.db.WithContext(ctx).Model(&userRecord{ID: user.ID}).Select(
		"name", "phone", "role", "approved", "has_business", "opted_out",
		"can_approve_requests", "address", "city", "state", "zip", "photo_url",
	).Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
