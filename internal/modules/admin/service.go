package admin

import (
	"context"
	"errors"
	"log"
	"time"

	"homepro/internal/domain"
	"homepro/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	applications ApplicationRepository
	technicians  TechnicianWriter
	bookings     BookingRepository
}

func NewService(applications ApplicationRepository, technicians TechnicianWriter, bookings BookingRepository) *Service {
	return &Service{
		applications: applications,
		technicians:  technicians,
		bookings:     bookings,
	}
}

func (s *Service) ListApplications(ctx context.Context, status string, page, limit int) ([]domain.TechnicianApplication, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if status != "" && !domain.ValidApplicationStatus(domain.ApplicationStatus(status)) {
		return nil, ErrValidation
	}

	return s.applications.List(ctx, status, limit, (page-1)*limit)
}

// ReviewApplication records the reviewing admin's decision. Marking an
// application hired provisions the technician record; re-reviewing a hired
// application is idempotent on that side effect.
func (s *Service) ReviewApplication(ctx context.Context, applicationID, adminID string, req ReviewApplicationRequest) (*domain.TechnicianApplication, error) {
	status := domain.ApplicationStatus(req.Status)
	if !domain.ValidApplicationStatus(status) {
		return nil, ErrValidation
	}

	a, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	a.Status = status
	a.AdminNotes = req.AdminNotes
	a.ReviewedBy = adminID
	a.ReviewedAt = &now

	if err := s.applications.Update(ctx, a); err != nil {
		return nil, err
	}

	if status == domain.ApplicationHired {
		tech := &domain.Technician{
			ID:          uuid.NewString(),
			Email:       a.Email,
			Name:        a.Name,
			Phone:       a.Phone,
			Specialties: a.Specialties,
			Active:      true,
			Verified:    true,
		}
		if err := s.technicians.Create(ctx, tech); err != nil {
			if !errors.Is(err, repository.ErrDuplicate) {
				return nil, err
			}
			log.Printf("admin: technician for application %s already provisioned", a.ID)
		}
	}

	return a, nil
}

func (s *Service) ListBookings(ctx context.Context, page, limit int) ([]domain.Booking, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.ListAll(ctx, limit, (page-1)*limit)
}

// UpdateBookingStatus advances a booking one step along the forward
// sequence, or cancels any non-terminal booking.
func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID string, req UpdateBookingStatusRequest) (*domain.Booking, error) {
	target := domain.BookingStatus(req.Status)

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !b.Status.CanAdvanceTo(target) {
		return nil, ErrInvalidTransition
	}

	b.Status = target
	if target == domain.BookingCancelled {
		now := time.Now().UTC()
		b.CancelledAt = &now
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
