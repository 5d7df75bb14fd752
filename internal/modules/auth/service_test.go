package auth

import (
	"context"
	"errors"
	"testing"

	"homepro/internal/domain"
	"homepro/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) Create(ctx context.Context, id *domain.Identity) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIdentityRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockIdentityRepository) GetByID(ctx context.Context, id string) (*domain.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

type MockCustomerWriter struct {
	mock.Mock
}

func (m *MockCustomerWriter) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockPrincipalResolver struct {
	mock.Mock
}

func (m *MockPrincipalResolver) Resolve(ctx context.Context, principalID string) (*domain.Principal, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID, role string) (string, error) {
	return "token-" + userID + "-" + role, nil
}

func newTestService() (*Service, *MockIdentityRepository, *MockCustomerWriter, *MockPrincipalResolver) {
	identities := new(MockIdentityRepository)
	customers := new(MockCustomerWriter)
	principals := new(MockPrincipalResolver)
	return NewService(identities, customers, principals, stubJWT{}), identities, customers, principals
}

func TestService_Register_Success(t *testing.T) {
	svc, identities, customers, _ := newTestService()

	identities.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	identities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Identity")).Return(nil)
	customers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "abcdef",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.False(t, result.ProvisioningDeferred)
	assert.Equal(t, "customer", result.User.Role)
	assert.Equal(t, "a@x.com", result.User.Email)
	identities.AssertExpectations(t)
	customers.AssertExpectations(t)
}

func TestService_Register_NeverExposesCredentials(t *testing.T) {
	svc, identities, customers, _ := newTestService()

	identities.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	identities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Identity")).Return(nil)
	customers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "abcdef",
	})

	assert.NoError(t, err)
	// the public user shape carries id/role/name/email and nothing else;
	// the customer record never sees the password either
	created := customers.Calls[0].Arguments.Get(1).(*domain.Customer)
	assert.Equal(t, result.User.ID, created.ID)
	assert.NotContains(t, result.User.Name+result.User.Email, "abcdef")
}

func TestService_Register_EmailTaken(t *testing.T) {
	svc, identities, _, _ := newTestService()

	identities.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&domain.Identity{ID: "existing", Email: "a@x.com"}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "abcdef",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_ConcurrentDuplicateBackstop(t *testing.T) {
	svc, identities, _, _ := newTestService()

	// pre-check misses, the unique index catches the race
	identities.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	identities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Identity")).
		Return(repository.ErrDuplicate)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "abcdef",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_ToleratesDeferredProvisioning(t *testing.T) {
	svc, identities, customers, _ := newTestService()

	identities.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	identities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Identity")).Return(nil)
	customers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).
		Return(errors.New("store unavailable"))

	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "abcdef",
	})

	// sign-up still succeeds with the session established
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.ProvisioningDeferred)
}

func TestService_Login_Success(t *testing.T) {
	svc, identities, _, principals := newTestService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("abcdef"), bcrypt.MinCost)
	identities.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&domain.Identity{ID: "p-1", Email: "a@x.com", PasswordHash: string(hash)}, nil)
	principals.On("Resolve", mock.Anything, "p-1").
		Return(&domain.Principal{ID: "p-1", Name: "A", Role: domain.RoleCustomer}, nil)

	result, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "abcdef"})

	assert.NoError(t, err)
	assert.Equal(t, "token-p-1-customer", result.Token)
	assert.Equal(t, "A", result.User.Name)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, identities, _, _ := newTestService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("abcdef"), bcrypt.MinCost)
	identities.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&domain.Identity{ID: "p-1", Email: "a@x.com", PasswordHash: string(hash)}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc, identities, _, _ := newTestService()

	identities.On("GetByEmail", mock.Anything, "nobody@x.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@x.com", Password: "abcdef"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnprovisionedPrincipalDefaultsToCustomer(t *testing.T) {
	svc, identities, _, principals := newTestService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("abcdef"), bcrypt.MinCost)
	identities.On("GetByEmail", mock.Anything, "a@x.com").
		Return(&domain.Identity{ID: "p-1", Email: "a@x.com", PasswordHash: string(hash)}, nil)
	principals.On("Resolve", mock.Anything, "p-1").
		Return(nil, domain.ErrPrincipalNotFound)

	result, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "abcdef"})

	assert.NoError(t, err)
	assert.Equal(t, "customer", result.User.Role)
}

func TestService_Login_ResolverFailureDoesNotDownrankRole(t *testing.T) {
	svc, identities, _, principals := newTestService()

	hash, _ := bcrypt.GenerateFromPassword([]byte("abcdef"), bcrypt.MinCost)
	identities.On("GetByEmail", mock.Anything, "admin@x.com").
		Return(&domain.Identity{ID: "p-1", Email: "admin@x.com", PasswordHash: string(hash)}, nil)
	principals.On("Resolve", mock.Anything, "p-1").
		Return(nil, errors.New("store unavailable"))

	// a transient store error must fail the login, not mint a customer token
	result, err := svc.Login(context.Background(), LoginRequest{Email: "admin@x.com", Password: "abcdef"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestService_Me_RepairsDeferredProvisioning(t *testing.T) {
	svc, identities, customers, principals := newTestService()

	principals.On("Resolve", mock.Anything, "p-1").
		Return(nil, domain.ErrPrincipalNotFound).Once()
	identities.On("GetByID", mock.Anything, "p-1").
		Return(&domain.Identity{ID: "p-1", Email: "a@x.com"}, nil)
	customers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)
	principals.On("Resolve", mock.Anything, "p-1").
		Return(&domain.Principal{ID: "p-1", Email: "a@x.com", Role: domain.RoleCustomer}, nil).Once()

	p, err := svc.Me(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, p.Role)
	customers.AssertExpectations(t)
}

func TestService_EnsureProvisioned_Idempotent(t *testing.T) {
	svc, identities, customers, _ := newTestService()

	identities.On("GetByID", mock.Anything, "p-1").
		Return(&domain.Identity{ID: "p-1", Email: "a@x.com"}, nil)
	customers.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).
		Return(repository.ErrDuplicate)

	// an already-provisioned principal is not an error
	assert.NoError(t, svc.EnsureProvisioned(context.Background(), "p-1"))
}
