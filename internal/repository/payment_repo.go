package repository

import (
	"context"
	"time"

	"homepro/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	BookingID     string    `gorm:"column:booking_id;index"`
	CustomerID    string    `gorm:"column:customer_id;index"`
	Amount        float64   `gorm:"column:amount"`
	Currency      string    `gorm:"column:currency"`
	Method        string    `gorm:"column:method"`
	Status        string    `gorm:"column:status"`
	TransactionID *string   `gorm:"column:transaction_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	var txn string
	if m.TransactionID != nil {
		txn = *m.TransactionID
	}

	return &domain.Payment{
		ID:            m.ID,
		BookingID:     m.BookingID,
		CustomerID:    m.CustomerID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Method:        m.Method,
		Status:        domain.PaymentStatus(m.Status),
		TransactionID: txn,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toPaymentModel(p *domain.Payment) paymentModel {
	var txn *string
	if p.TransactionID != "" {
		v := p.TransactionID
		txn = &v
	}

	return paymentModel{
		ID:            p.ID,
		BookingID:     p.BookingID,
		CustomerID:    p.CustomerID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Method:        p.Method,
		Status:        string(p.Status),
		TransactionID: txn,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var m paymentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Payment, error) {
	var models []paymentModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Payment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*p = *toDomainPayment(m)
	return nil
}
