package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// ErrPrincipalNotFound marks an authenticated identity with no role record
// in any store — a valid transient state right after a partially
// provisioned registration.
var ErrPrincipalNotFound = errors.New("principal not found")

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

type Customer struct {
	ID            string         `json:"id"`
	Email         string         `json:"email" validate:"required,email"`
	Name          string         `json:"name"`
	Phone         string         `json:"phone,omitempty"`
	Avatar        string         `json:"avatar,omitempty"`
	Preferences   datatypes.JSON `json:"preferences,omitempty"`
	TotalSpent    float64        `json:"total_spent"`
	LoyaltyPoints int            `json:"loyalty_points"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type Address struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Type       string    `json:"type"`
	Address    string    `json:"address" validate:"required"`
	City       string    `json:"city" validate:"required"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
}

type Technician struct {
	ID            string         `json:"id"`
	Email         string         `json:"email" validate:"required,email"`
	Name          string         `json:"name"`
	Phone         string         `json:"phone,omitempty"`
	Avatar        string         `json:"avatar,omitempty"`
	Specialties   datatypes.JSON `json:"specialties,omitempty"`
	HourlyRate    float64        `json:"hourly_rate"`
	Rating        float64        `json:"rating"`
	JobsCompleted int            `json:"jobs_completed"`
	Active        bool           `json:"active"`
	Verified      bool           `json:"verified"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type Admin struct {
	ID          string         `json:"id"`
	Email       string         `json:"email" validate:"required,email"`
	Name        string         `json:"name"`
	Permissions datatypes.JSON `json:"permissions,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Principal is an authenticated identity resolved to exactly one role
// record. Exactly one of the payload pointers is set, matching Role.
type Principal struct {
	ID         string      `json:"id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       Role        `json:"role"`
	Customer   *Customer   `json:"customer,omitempty"`
	Technician *Technician `json:"technician,omitempty"`
	Admin      *Admin      `json:"admin,omitempty"`
}
