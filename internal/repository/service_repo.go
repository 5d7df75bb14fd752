package repository

import (
	"context"
	"time"

	"homepro/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Category    string    `gorm:"column:category;index"`
	Description *string   `gorm:"column:description"`
	BasePrice   float64   `gorm:"column:base_price"`
	DurationMin int       `gorm:"column:duration_min"`
	Active      bool      `gorm:"column:active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Service{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Description: description,
		BasePrice:   m.BasePrice,
		DurationMin: m.DurationMin,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var models []serviceModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Service, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	var m serviceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainService(m), nil
}

// Upsert is used by the seed command; catalog entries are keyed by slug.
func (r *ServiceRepository) Upsert(ctx context.Context, s *domain.Service) error {
	var description *string
	if s.Description != "" {
		v := s.Description
		description = &v
	}

	m := serviceModel{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: description,
		BasePrice:   s.BasePrice,
		DurationMin: s.DurationMin,
		Active:      s.Active,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}
