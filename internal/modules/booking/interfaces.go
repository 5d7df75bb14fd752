package booking

import (
	"context"

	"homepro/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByIDForCustomer(ctx context.Context, id, customerID string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
}

// ServiceCatalog resolves price and display name at booking time.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

type TechnicianReader interface {
	GetByID(ctx context.Context, id string) (*domain.Technician, error)
}
