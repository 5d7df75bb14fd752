package domain

import "time"

// Identity is the credential record behind a Principal. It never leaves
// the auth module; role records carry no credential material.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
