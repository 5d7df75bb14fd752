package repository

import (
	"context"
	"strings"
	"time"

	"homepro/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID            string         `gorm:"column:id;primaryKey"`
	Email         string         `gorm:"column:email;uniqueIndex"`
	Name          string         `gorm:"column:name"`
	Phone         *string        `gorm:"column:phone"`
	Avatar        *string        `gorm:"column:avatar"`
	Preferences   datatypes.JSON `gorm:"column:preferences"`
	TotalSpent    float64        `gorm:"column:total_spent"`
	LoyaltyPoints int            `gorm:"column:loyalty_points"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (customerModel) TableName() string { return "customers" }

func toDomainCustomer(m customerModel) *domain.Customer {
	var phone, avatar string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Avatar != nil {
		avatar = *m.Avatar
	}

	return &domain.Customer{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		Phone:         phone,
		Avatar:        avatar,
		Preferences:   m.Preferences,
		TotalSpent:    m.TotalSpent,
		LoyaltyPoints: m.LoyaltyPoints,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	var phone, avatar *string
	if c.Phone != "" {
		v := c.Phone
		phone = &v
	}
	if c.Avatar != "" {
		v := c.Avatar
		avatar = &v
	}

	return customerModel{
		ID:            c.ID,
		Email:         strings.ToLower(strings.TrimSpace(c.Email)),
		Name:          c.Name,
		Phone:         phone,
		Avatar:        avatar,
		Preferences:   c.Preferences,
		TotalSpent:    c.TotalSpent,
		LoyaltyPoints: c.LoyaltyPoints,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if err := translateUnique(r.db.WithContext(ctx).Create(&m).Error); err != nil {
		return err
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCustomer(m)
	return nil
}
