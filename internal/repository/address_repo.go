package repository

import (
	"context"
	"time"

	"homepro/internal/domain"

	"gorm.io/gorm"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

type addressModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	CustomerID string    `gorm:"column:customer_id;index"`
	Type       string    `gorm:"column:type"`
	Address    string    `gorm:"column:address"`
	City       string    `gorm:"column:city"`
	State      string    `gorm:"column:state"`
	ZipCode    string    `gorm:"column:zip_code"`
	IsDefault  bool      `gorm:"column:is_default"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (addressModel) TableName() string { return "addresses" }

func toDomainAddress(m addressModel) domain.Address {
	return domain.Address{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Type:       m.Type,
		Address:    m.Address,
		City:       m.City,
		State:      m.State,
		ZipCode:    m.ZipCode,
		IsDefault:  m.IsDefault,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.Address) error {
	m := addressModel{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Type:       a.Type,
		Address:    a.Address,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
		IsDefault:  a.IsDefault,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*a = toDomainAddress(m)
	return nil
}

func (r *AddressRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Address, error) {
	var models []addressModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Address, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainAddress(m))
	}
	return out, nil
}

// ClearDefault unsets is_default on every address of the customer, used
// before inserting a new default.
func (r *AddressRepository) ClearDefault(ctx context.Context, customerID string) error {
	return r.db.WithContext(ctx).
		Model(&addressModel{}).
		Where("customer_id = ?", customerID).
		Update("is_default", false).Error
}
