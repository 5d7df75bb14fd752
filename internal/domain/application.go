package domain

import (
	"time"

	"gorm.io/datatypes"
)

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationHired     ApplicationStatus = "hired"
)

func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationReviewing, ApplicationApproved,
		ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// TechnicianApplication is a request to become a Technician principal.
// Status, AdminNotes, ReviewedBy and ReviewedAt are writable by admins only.
type TechnicianApplication struct {
	ID              string            `json:"id"`
	Email           string            `json:"email" validate:"required,email"`
	Name            string            `json:"name" validate:"required"`
	Phone           string            `json:"phone,omitempty"`
	Specialties     datatypes.JSON    `json:"specialties,omitempty"`
	ExperienceYears int               `json:"experience_years"`
	Resume          string            `json:"resume,omitempty"`
	Status          ApplicationStatus `json:"status"`
	AdminNotes      string            `json:"admin_notes,omitempty"`
	ReviewedBy      string            `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
