package auth

import (
	"context"

	"homepro/internal/domain"
)

type IdentityRepository interface {
	Create(ctx context.Context, id *domain.Identity) error
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
	GetByID(ctx context.Context, id string) (*domain.Identity, error)
}

// CustomerWriter provisions the companion role record at sign-up.
type CustomerWriter interface {
	Create(ctx context.Context, c *domain.Customer) error
}

type jwtService interface {
	GenerateToken(userID, role string) (string, error)
}

// PrincipalResolver maps an authenticated id to its role record. Implemented
// by the user module's service.
type PrincipalResolver interface {
	Resolve(ctx context.Context, principalID string) (*domain.Principal, error)
}
