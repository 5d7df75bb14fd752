package repository

import (
	"context"
	"strings"
	"time"

	"homepro/internal/domain"

	"gorm.io/gorm"
)

type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

type identityModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (identityModel) TableName() string { return "identities" }

func toDomainIdentity(m identityModel) *domain.Identity {
	return &domain.Identity{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *IdentityRepository) Create(ctx context.Context, id *domain.Identity) error {
	m := identityModel{
		ID:           id.ID,
		Email:        strings.ToLower(strings.TrimSpace(id.Email)),
		PasswordHash: id.PasswordHash,
	}
	if err := translateUnique(r.db.WithContext(ctx).Create(&m).Error); err != nil {
		return err
	}
	*id = *toDomainIdentity(m)
	return nil
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	var m identityModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainIdentity(m), nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	var m identityModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainIdentity(m), nil
}
