package payment

import (
	"context"
	"errors"

	"homepro/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	payments PaymentRepository
	bookings bookingReader
	gateway  Gateway
}

func NewService(payments PaymentRepository, bookings bookingReader, gateway Gateway) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		gateway:  gateway,
	}
}

// Create charges the gateway for a booking the caller owns. The payment row
// is written before the charge so a declined charge still leaves an audit
// record in failed state.
func (s *Service) Create(ctx context.Context, customerID string, req CreatePaymentRequest) (*domain.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.bookings.GetByIDForCustomer(ctx, req.BookingID, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	p := &domain.Payment{
		ID:         uuid.NewString(),
		BookingID:  req.BookingID,
		CustomerID: customerID,
		Amount:     req.Amount,
		Currency:   currency,
		Method:     req.Method,
		Status:     domain.PaymentPending,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	txnID, err := s.gateway.Charge(ctx, p.Amount, p.Currency, p.Method)
	if err != nil {
		p.Status = domain.PaymentFailed
		if updErr := s.payments.Update(ctx, p); updErr != nil {
			return nil, updErr
		}
		return p, ErrChargeFailed
	}

	p.Status = domain.PaymentCompleted
	p.TransactionID = txnID
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListForCustomer(ctx context.Context, customerID string) ([]domain.Payment, error) {
	return s.payments.ListByCustomer(ctx, customerID)
}

// Refund moves a completed payment to refunded. Cancelling a booking does
// not call this; refunds are an explicit admin decision.
func (s *Service) Refund(ctx context.Context, paymentID string) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if p.Status != domain.PaymentCompleted {
		return nil, ErrInvalidTransition
	}

	if err := s.gateway.Refund(ctx, p.TransactionID); err != nil {
		return nil, err
	}

	p.Status = domain.PaymentRefunded
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
