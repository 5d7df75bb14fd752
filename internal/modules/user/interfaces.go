package user

import (
	"context"

	"homepro/internal/domain"
)

type AdminReader interface {
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
}

type TechnicianRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Technician, error)
	Update(ctx context.Context, t *domain.Technician) error
}

type AddressRepository interface {
	Create(ctx context.Context, a *domain.Address) error
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Address, error)
	ClearDefault(ctx context.Context, customerID string) error
}
