package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"homepro/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	bookings    BookingRepository
	catalog     ServiceCatalog
	technicians TechnicianReader
}

func NewService(bookings BookingRepository, catalog ServiceCatalog, technicians TechnicianReader) *Service {
	return &Service{
		bookings:    bookings,
		catalog:     catalog,
		technicians: technicians,
	}
}

// Create opens a booking in pending state. Price and display names come
// from the catalog and technician stores, not from the client.
func (s *Service) Create(ctx context.Context, customerID string, req CreateBookingRequest) (*domain.Booking, error) {
	if strings.TrimSpace(req.ServiceID) == "" ||
		strings.TrimSpace(req.TechnicianID) == "" ||
		strings.TrimSpace(req.ScheduledDate) == "" ||
		strings.TrimSpace(req.ScheduledTime) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return nil, ErrValidation
	}

	svc, err := s.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	tech, err := s.technicians.GetByID(ctx, req.TechnicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	b := &domain.Booking{
		ID:             uuid.NewString(),
		ServiceID:      svc.ID,
		ServiceName:    svc.Name,
		TechnicianID:   tech.ID,
		TechnicianName: tech.Name,
		CustomerID:     customerID,
		Status:         domain.BookingPending,
		ScheduledDate:  req.ScheduledDate,
		ScheduledTime:  req.ScheduledTime,
		Address:        req.Address,
		Description:    req.Description,
		Price:          svc.BasePrice,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel moves a non-terminal booking to cancelled. Bookings owned by other
// customers read as not found.
func (s *Service) Cancel(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByIDForCustomer(ctx, bookingID, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Status.Terminal() {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	b.Status = domain.BookingCancelled
	b.CancelledAt = &now

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Rate attaches a rating and optional review to a completed booking.
func (s *Service) Rate(ctx context.Context, bookingID, customerID string, req RateBookingRequest) (*domain.Booking, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByIDForCustomer(ctx, bookingID, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Status != domain.BookingCompleted {
		return nil, ErrInvalidTransition
	}

	rating := req.Rating
	b.Rating = &rating
	b.Review = req.Review

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByIDForCustomer(ctx, bookingID, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListForCustomer returns the caller's bookings ordered by creation time.
func (s *Service) ListForCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}
