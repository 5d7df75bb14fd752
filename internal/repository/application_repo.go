package repository

import (
	"context"
	"strings"
	"time"

	"homepro/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

type applicationModel struct {
	ID              string         `gorm:"column:id;primaryKey"`
	Email           string         `gorm:"column:email;index"`
	Name            string         `gorm:"column:name"`
	Phone           *string        `gorm:"column:phone"`
	Specialties     datatypes.JSON `gorm:"column:specialties"`
	ExperienceYears int            `gorm:"column:experience_years"`
	Resume          *string        `gorm:"column:resume"`
	Status          string         `gorm:"column:status"`
	AdminNotes      *string        `gorm:"column:admin_notes"`
	ReviewedBy      *string        `gorm:"column:reviewed_by"`
	ReviewedAt      *time.Time     `gorm:"column:reviewed_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
}

func (applicationModel) TableName() string { return "technician_applications" }

func toDomainApplication(m applicationModel) *domain.TechnicianApplication {
	var phone, resume, notes, reviewedBy string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Resume != nil {
		resume = *m.Resume
	}
	if m.AdminNotes != nil {
		notes = *m.AdminNotes
	}
	if m.ReviewedBy != nil {
		reviewedBy = *m.ReviewedBy
	}

	return &domain.TechnicianApplication{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		Phone:           phone,
		Specialties:     m.Specialties,
		ExperienceYears: m.ExperienceYears,
		Resume:          resume,
		Status:          domain.ApplicationStatus(m.Status),
		AdminNotes:      notes,
		ReviewedBy:      reviewedBy,
		ReviewedAt:      m.ReviewedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toApplicationModel(a *domain.TechnicianApplication) applicationModel {
	var phone, resume, notes, reviewedBy *string
	if a.Phone != "" {
		v := a.Phone
		phone = &v
	}
	if a.Resume != "" {
		v := a.Resume
		resume = &v
	}
	if a.AdminNotes != "" {
		v := a.AdminNotes
		notes = &v
	}
	if a.ReviewedBy != "" {
		v := a.ReviewedBy
		reviewedBy = &v
	}

	return applicationModel{
		ID:              a.ID,
		Email:           strings.ToLower(strings.TrimSpace(a.Email)),
		Name:            a.Name,
		Phone:           phone,
		Specialties:     a.Specialties,
		ExperienceYears: a.ExperienceYears,
		Resume:          resume,
		Status:          string(a.Status),
		AdminNotes:      notes,
		ReviewedBy:      reviewedBy,
		ReviewedAt:      a.ReviewedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.TechnicianApplication) error {
	m := toApplicationModel(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*a = *toDomainApplication(m)
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*domain.TechnicianApplication, error) {
	var m applicationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainApplication(m), nil
}

func (r *ApplicationRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.TechnicianApplication, error) {
	q := r.db.WithContext(ctx).Model(&applicationModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var models []applicationModel
	err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.TechnicianApplication, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainApplication(m))
	}
	return out, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, a *domain.TechnicianApplication) error {
	m := toApplicationModel(a)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*a = *toDomainApplication(m)
	return nil
}
