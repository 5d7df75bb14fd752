package payment

import (
	"context"

	"homepro/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
}

type bookingReader interface {
	GetByIDForCustomer(ctx context.Context, id, customerID string) (*domain.Booking, error)
}
