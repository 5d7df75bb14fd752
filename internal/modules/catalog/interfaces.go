package catalog

import (
	"context"

	"homepro/internal/domain"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

type TechnicianRepository interface {
	ListActiveByCategory(ctx context.Context, category string) ([]domain.Technician, error)
}
