package admin

import (
	"context"

	"homepro/internal/domain"
)

type ApplicationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TechnicianApplication, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.TechnicianApplication, error)
	Update(ctx context.Context, a *domain.TechnicianApplication) error
}

// TechnicianWriter provisions the technician record when an application is
// marked hired.
type TechnicianWriter interface {
	Create(ctx context.Context, t *domain.Technician) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
}
