package repository

import (
	"context"
	"strings"
	"time"

	"homepro/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TechnicianRepository struct {
	db *gorm.DB
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

type technicianModel struct {
	ID            string         `gorm:"column:id;primaryKey"`
	Email         string         `gorm:"column:email;uniqueIndex"`
	Name          string         `gorm:"column:name"`
	Phone         *string        `gorm:"column:phone"`
	Avatar        *string        `gorm:"column:avatar"`
	Specialties   datatypes.JSON `gorm:"column:specialties"`
	HourlyRate    float64        `gorm:"column:hourly_rate"`
	Rating        float64        `gorm:"column:rating"`
	JobsCompleted int            `gorm:"column:jobs_completed"`
	Active        bool           `gorm:"column:active"`
	Verified      bool           `gorm:"column:verified"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (technicianModel) TableName() string { return "technicians" }

func toDomainTechnician(m technicianModel) *domain.Technician {
	var phone, avatar string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Avatar != nil {
		avatar = *m.Avatar
	}

	return &domain.Technician{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		Phone:         phone,
		Avatar:        avatar,
		Specialties:   m.Specialties,
		HourlyRate:    m.HourlyRate,
		Rating:        m.Rating,
		JobsCompleted: m.JobsCompleted,
		Active:        m.Active,
		Verified:      m.Verified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toTechnicianModel(t *domain.Technician) technicianModel {
	var phone, avatar *string
	if t.Phone != "" {
		v := t.Phone
		phone = &v
	}
	if t.Avatar != "" {
		v := t.Avatar
		avatar = &v
	}

	return technicianModel{
		ID:            t.ID,
		Email:         strings.ToLower(strings.TrimSpace(t.Email)),
		Name:          t.Name,
		Phone:         phone,
		Avatar:        avatar,
		Specialties:   t.Specialties,
		HourlyRate:    t.HourlyRate,
		Rating:        t.Rating,
		JobsCompleted: t.JobsCompleted,
		Active:        t.Active,
		Verified:      t.Verified,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TechnicianRepository) Create(ctx context.Context, t *domain.Technician) error {
	m := toTechnicianModel(t)
	if err := translateUnique(r.db.WithContext(ctx).Create(&m).Error); err != nil {
		return err
	}
	*t = *toDomainTechnician(m)
	return nil
}

func (r *TechnicianRepository) GetByID(ctx context.Context, id string) (*domain.Technician, error) {
	var m technicianModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainTechnician(m), nil
}

func (r *TechnicianRepository) Update(ctx context.Context, t *domain.Technician) error {
	m := toTechnicianModel(t)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*t = *toDomainTechnician(m)
	return nil
}

// ListActiveByCategory returns verified, active technicians whose
// specialties JSON mentions the category. Specialties are small arrays, so
// a LIKE match keeps this portable across postgres and sqlite.
func (r *TechnicianRepository) ListActiveByCategory(ctx context.Context, category string) ([]domain.Technician, error) {
	var models []technicianModel
	err := r.db.WithContext(ctx).
		Where("active = ? AND verified = ?", true, true).
		Where("specialties LIKE ?", "%"+category+"%").
		Order("rating DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Technician, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainTechnician(m))
	}
	return out, nil
}
