package payment

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("payment not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrChargeFailed      = errors.New("charge declined")
	ErrInvalidTransition = errors.New("invalid payment status transition")
)
