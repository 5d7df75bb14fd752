package repository

import (
	"context"
	"time"

	"homepro/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             string     `gorm:"column:id;primaryKey"`
	ServiceID      string     `gorm:"column:service_id"`
	ServiceName    string     `gorm:"column:service_name"`
	TechnicianID   string     `gorm:"column:technician_id;index"`
	TechnicianName string     `gorm:"column:technician_name"`
	CustomerID     string     `gorm:"column:customer_id;index"`
	Status         string     `gorm:"column:status"`
	ScheduledDate  string     `gorm:"column:scheduled_date"`
	ScheduledTime  string     `gorm:"column:scheduled_time"`
	Address        string     `gorm:"column:address"`
	Description    *string    `gorm:"column:description"`
	Price          float64    `gorm:"column:price"`
	Rating         *int       `gorm:"column:rating"`
	Review         *string    `gorm:"column:review"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
	CancelledAt    *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var description, review string
	if m.Description != nil {
		description = *m.Description
	}
	if m.Review != nil {
		review = *m.Review
	}

	return &domain.Booking{
		ID:             m.ID,
		ServiceID:      m.ServiceID,
		ServiceName:    m.ServiceName,
		TechnicianID:   m.TechnicianID,
		TechnicianName: m.TechnicianName,
		CustomerID:     m.CustomerID,
		Status:         domain.BookingStatus(m.Status),
		ScheduledDate:  m.ScheduledDate,
		ScheduledTime:  m.ScheduledTime,
		Address:        m.Address,
		Description:    description,
		Price:          m.Price,
		Rating:         m.Rating,
		Review:         review,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		CancelledAt:    m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var description, review *string
	if b.Description != "" {
		v := b.Description
		description = &v
	}
	if b.Review != "" {
		v := b.Review
		review = &v
	}

	return bookingModel{
		ID:             b.ID,
		ServiceID:      b.ServiceID,
		ServiceName:    b.ServiceName,
		TechnicianID:   b.TechnicianID,
		TechnicianName: b.TechnicianName,
		CustomerID:     b.CustomerID,
		Status:         string(b.Status),
		ScheduledDate:  b.ScheduledDate,
		ScheduledTime:  b.ScheduledTime,
		Address:        b.Address,
		Description:    description,
		Price:          b.Price,
		Rating:         b.Rating,
		Review:         review,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		CancelledAt:    b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// GetByIDForCustomer scopes the lookup to the owning customer so a miss and
// a foreign booking are indistinguishable to the caller.
func (r *BookingRepository) GetByIDForCustomer(ctx context.Context, id, customerID string) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}
