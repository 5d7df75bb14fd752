package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"homepro/internal/domain"
	"homepro/internal/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var ErrValidation = errors.New("validation error")

type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.TechnicianApplication) error
}

type Service struct {
	applications ApplicationRepository
}

func NewService(applications ApplicationRepository) *Service {
	return &Service{applications: applications}
}

// Submit files a new technician application in pending state. Review is an
// admin operation; applicants cannot touch status or notes.
func (s *Service) Submit(ctx context.Context, req SubmitApplicationRequest) (*domain.TechnicianApplication, error) {
	var specialties datatypes.JSON
	if len(req.Specialties) > 0 {
		raw, err := json.Marshal(req.Specialties)
		if err != nil {
			return nil, ErrValidation
		}
		specialties = raw
	}

	a := &domain.TechnicianApplication{
		ID:              uuid.NewString(),
		Email:           req.Email,
		Name:            req.Name,
		Phone:           req.Phone,
		Specialties:     specialties,
		ExperienceYears: req.ExperienceYears,
		Resume:          req.Resume,
		Status:          domain.ApplicationPending,
	}
	if errs := validator.Validate(a); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, validator.Message(errs))
	}
	if err := s.applications.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
