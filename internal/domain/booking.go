package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingScheduled  BookingStatus = "scheduled"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// bookingSequence is the forward path a booking walks when a technician or
// admin advances it. Cancellation branches off from any non-terminal state.
var bookingSequence = map[BookingStatus]BookingStatus{
	BookingPending:    BookingScheduled,
	BookingScheduled:  BookingConfirmed,
	BookingConfirmed:  BookingInProgress,
	BookingInProgress: BookingCompleted,
}

func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// Next returns the status that follows s in the forward sequence.
func (s BookingStatus) Next() (BookingStatus, bool) {
	n, ok := bookingSequence[s]
	return n, ok
}

// CanAdvanceTo reports whether moving from s to target is a legal forward
// step or a cancellation of a non-terminal booking.
func (s BookingStatus) CanAdvanceTo(target BookingStatus) bool {
	if target == BookingCancelled {
		return !s.Terminal()
	}
	return bookingSequence[s] == target
}

type Booking struct {
	ID             string        `json:"id"`
	ServiceID      string        `json:"service_id" validate:"required"`
	ServiceName    string        `json:"service_name"`
	TechnicianID   string        `json:"technician_id" validate:"required"`
	TechnicianName string        `json:"technician_name"`
	CustomerID     string        `json:"customer_id"`
	Status         BookingStatus `json:"status"`
	ScheduledDate  string        `json:"scheduled_date" validate:"required"`
	ScheduledTime  string        `json:"scheduled_time" validate:"required"`
	Address        string        `json:"address" validate:"required"`
	Description    string        `json:"description,omitempty"`
	Price          float64       `json:"price"`
	Rating         *int          `json:"rating,omitempty"`
	Review         string        `json:"review,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`
}
