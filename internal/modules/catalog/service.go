package catalog

import (
	"context"
	"errors"

	"homepro/internal/domain"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type Service struct {
	services    ServiceRepository
	technicians TechnicianRepository
}

func NewService(services ServiceRepository, technicians TechnicianRepository) *Service {
	return &Service{
		services:    services,
		technicians: technicians,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

// TechniciansFor lists active verified technicians whose specialties cover
// the service's category, best rated first.
func (s *Service) TechniciansFor(ctx context.Context, serviceID string) ([]domain.Technician, error) {
	svc, err := s.Get(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return s.technicians.ListActiveByCategory(ctx, svc.Category)
}
