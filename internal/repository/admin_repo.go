package repository

import (
	"context"
	"strings"
	"time"

	"homepro/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

type adminModel struct {
	ID          string         `gorm:"column:id;primaryKey"`
	Email       string         `gorm:"column:email;uniqueIndex"`
	Name        string         `gorm:"column:name"`
	Permissions datatypes.JSON `gorm:"column:permissions"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (adminModel) TableName() string { return "admins" }

func toDomainAdmin(m adminModel) *domain.Admin {
	return &domain.Admin{
		ID:          m.ID,
		Email:       m.Email,
		Name:        m.Name,
		Permissions: m.Permissions,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	m := adminModel{
		ID:          a.ID,
		Email:       strings.ToLower(strings.TrimSpace(a.Email)),
		Name:        a.Name,
		Permissions: a.Permissions,
	}
	if err := translateUnique(r.db.WithContext(ctx).Create(&m).Error); err != nil {
		return err
	}
	*a = *toDomainAdmin(m)
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	var m adminModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainAdmin(m), nil
}
