package domain

import "time"

// Service is a catalog entry. IDs are stable slugs ("ac-installation"),
// seeded rather than generated.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	BasePrice   float64   `json:"base_price"`
	DurationMin int       `json:"duration_min"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
