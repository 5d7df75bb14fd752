package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"booking_id" validate:"required"`
	CustomerID    string        `json:"customer_id"`
	Amount        float64       `json:"amount" validate:"required,gt=0"`
	Currency      string        `json:"currency"`
	Method        string        `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
