package user

import (
	"context"
	"errors"

	"homepro/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	admins      AdminReader
	customers   CustomerRepository
	technicians TechnicianRepository
	addresses   AddressRepository
}

func NewService(
	admins AdminReader,
	customers CustomerRepository,
	technicians TechnicianRepository,
	addresses AddressRepository,
) *Service {
	return &Service{
		admins:      admins,
		customers:   customers,
		technicians: technicians,
		addresses:   addresses,
	}
}

// Resolve probes admin, then customer, then technician. A principal id is
// inserted into exactly one store at provisioning time, so the order only
// affects lookup cost; admins first since that set is smallest.
func (s *Service) Resolve(ctx context.Context, principalID string) (*domain.Principal, error) {
	if a, err := s.admins.GetByID(ctx, principalID); err == nil {
		return &domain.Principal{
			ID:    a.ID,
			Email: a.Email,
			Name:  a.Name,
			Role:  domain.RoleAdmin,
			Admin: a,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if c, err := s.customers.GetByID(ctx, principalID); err == nil {
		return &domain.Principal{
			ID:       c.ID,
			Email:    c.Email,
			Name:     c.Name,
			Role:     domain.RoleCustomer,
			Customer: c,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if t, err := s.technicians.GetByID(ctx, principalID); err == nil {
		return &domain.Principal{
			ID:         t.ID,
			Email:      t.Email,
			Name:       t.Name,
			Role:       domain.RoleTechnician,
			Technician: t,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, domain.ErrPrincipalNotFound
}

// UpdateProfile applies the allowlisted fields to the caller's role record.
// Fields that do not exist for the caller's role (preferences on a
// technician, everything on an admin) are dropped, not rejected.
func (s *Service) UpdateProfile(ctx context.Context, principalID string, req ProfileUpdateRequest) (*domain.Principal, error) {
	p, err := s.Resolve(ctx, principalID)
	if err != nil {
		return nil, err
	}

	switch {
	case p.Customer != nil:
		c := p.Customer
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Avatar != nil {
			c.Avatar = *req.Avatar
		}
		if len(req.Preferences) > 0 {
			c.Preferences = datatypes.JSON(req.Preferences)
		}
		if err := s.customers.Update(ctx, c); err != nil {
			return nil, err
		}
		p.Name = c.Name

	case p.Technician != nil:
		t := p.Technician
		if req.Name != nil {
			t.Name = *req.Name
		}
		if req.Phone != nil {
			t.Phone = *req.Phone
		}
		if req.Avatar != nil {
			t.Avatar = *req.Avatar
		}
		if err := s.technicians.Update(ctx, t); err != nil {
			return nil, err
		}
		p.Name = t.Name
	}

	return p, nil
}

func (s *Service) AddAddress(ctx context.Context, customerID string, req CreateAddressRequest) (*domain.Address, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, err
	}

	if req.IsDefault {
		if err := s.addresses.ClearDefault(ctx, customerID); err != nil {
			return nil, err
		}
	}

	addr := &domain.Address{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Type:       req.Type,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		ZipCode:    req.ZipCode,
		IsDefault:  req.IsDefault,
	}
	if err := s.addresses.Create(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *Service) ListAddresses(ctx context.Context, customerID string) ([]domain.Address, error) {
	return s.addresses.ListByCustomer(ctx, customerID)
}
