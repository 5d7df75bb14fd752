package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"homepro/internal/domain"
	"homepro/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service is the identity provider adapter: it owns credentials and session
// tokens, and provisions the companion customer record at sign-up.
type Service struct {
	identities IdentityRepository
	customers  CustomerWriter
	principals PrincipalResolver
	jwt        jwtService
}

func NewService(identities IdentityRepository, customers CustomerWriter, principals PrincipalResolver, jwt jwtService) *Service {
	return &Service{
		identities: identities,
		customers:  customers,
		principals: principals,
		jwt:        jwt,
	}
}

// Register creates the identity first, then the customer record. A failed
// customer write does not roll the identity back: sign-up still succeeds
// with ProvisioningDeferred set, and the record is backfilled on first
// authenticated request. Uniqueness is pre-checked against the identities
// table, with the DB unique index as backstop for concurrent registrations.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.identities.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.identities.Create(ctx, identity); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	result := &RegisterResult{
		User: publicUser(identity.ID, identity.Email, req.Name, domain.RoleCustomer),
	}

	customer := &domain.Customer{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  req.Name,
		Phone: req.Phone,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		log.Printf("auth: deferred provisioning for %s: %v", identity.ID, err)
		result.ProvisioningDeferred = true
	}

	token, err := s.jwt.GenerateToken(identity.ID, string(domain.RoleCustomer))
	if err != nil {
		return nil, err
	}
	result.Token = token

	return result, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	identity, err := s.identities.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	// A principal without a role record is a valid transient state right
	// after a tolerated partial registration; treat it as a customer. Any
	// other resolver failure must not mint a down-ranked token.
	role := domain.RoleCustomer
	name := ""
	p, err := s.principals.Resolve(ctx, identity.ID)
	switch {
	case err == nil:
		role = p.Role
		name = p.Name
	case errors.Is(err, domain.ErrPrincipalNotFound):
	default:
		return nil, err
	}

	token, err := s.jwt.GenerateToken(identity.ID, string(role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:  publicUser(identity.ID, identity.Email, name, role),
		Token: token,
	}, nil
}

// Me resolves the caller's principal, repairing a deferred provisioning on
// the way: if no role record exists yet, the default customer row is
// backfilled from the identity and resolution is retried once.
func (s *Service) Me(ctx context.Context, principalID string) (*domain.Principal, error) {
	p, err := s.principals.Resolve(ctx, principalID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrPrincipalNotFound) {
		return nil, err
	}

	if repairErr := s.EnsureProvisioned(ctx, principalID); repairErr != nil {
		return nil, repairErr
	}
	return s.principals.Resolve(ctx, principalID)
}

// EnsureProvisioned idempotently backfills the default customer record for
// an identity that registered but never got one.
func (s *Service) EnsureProvisioned(ctx context.Context, principalID string) error {
	identity, err := s.identities.GetByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIdentityNotFound
		}
		return err
	}

	customer := &domain.Customer{
		ID:    identity.ID,
		Email: identity.Email,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return err
	}
	return nil
}
