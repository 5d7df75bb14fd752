package admin

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrApplicationNotFound = errors.New("application not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)
