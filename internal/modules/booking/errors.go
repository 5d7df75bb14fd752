package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
