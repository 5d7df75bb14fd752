package admin

import (
	"context"
	"testing"

	"homepro/internal/domain"
	"homepro/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id string) (*domain.TechnicianApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TechnicianApplication), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.TechnicianApplication, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TechnicianApplication), args.Error(1)
}

func (m *MockApplicationRepository) Update(ctx context.Context, a *domain.TechnicianApplication) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockTechnicianWriter struct {
	mock.Mock
}

func (m *MockTechnicianWriter) Create(ctx context.Context, t *domain.Technician) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func newTestService() (*Service, *MockApplicationRepository, *MockTechnicianWriter, *MockBookingRepository) {
	applications := new(MockApplicationRepository)
	technicians := new(MockTechnicianWriter)
	bookings := new(MockBookingRepository)
	return NewService(applications, technicians, bookings), applications, technicians, bookings
}

func TestService_ListApplications_DefaultsAndOffset(t *testing.T) {
	svc, applications, _, _ := newTestService()

	applications.On("List", mock.Anything, "", 20, 0).
		Return([]domain.TechnicianApplication{{ID: "app-1"}}, nil)

	apps, err := svc.ListApplications(context.Background(), "", 0, 0)
	assert.NoError(t, err)
	assert.Len(t, apps, 1)

	applications.On("List", mock.Anything, "pending", 10, 20).
		Return([]domain.TechnicianApplication{}, nil)

	_, err = svc.ListApplications(context.Background(), "pending", 3, 10)
	assert.NoError(t, err)
	applications.AssertExpectations(t)
}

func TestService_ListApplications_UnknownStatus(t *testing.T) {
	svc, applications, _, _ := newTestService()

	_, err := svc.ListApplications(context.Background(), "bogus", 1, 20)

	assert.ErrorIs(t, err, ErrValidation)
	applications.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ReviewApplication_RecordsReviewer(t *testing.T) {
	svc, applications, technicians, _ := newTestService()

	applications.On("GetByID", mock.Anything, "app-1").
		Return(&domain.TechnicianApplication{ID: "app-1", Status: domain.ApplicationPending}, nil)
	applications.On("Update", mock.Anything, mock.AnythingOfType("*domain.TechnicianApplication")).Return(nil)

	a, err := svc.ReviewApplication(context.Background(), "app-1", "admin-1", ReviewApplicationRequest{
		Status:     "reviewing",
		AdminNotes: "looks promising",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationReviewing, a.Status)
	assert.Equal(t, "looks promising", a.AdminNotes)
	assert.Equal(t, "admin-1", a.ReviewedBy)
	assert.NotNil(t, a.ReviewedAt)
	technicians.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ReviewApplication_HiredProvisionsTechnician(t *testing.T) {
	svc, applications, technicians, _ := newTestService()

	applications.On("GetByID", mock.Anything, "app-1").
		Return(&domain.TechnicianApplication{
			ID:    "app-1",
			Email: "tech@x.com",
			Name:  "Tess",
			Phone: "+15550102",
		}, nil)
	applications.On("Update", mock.Anything, mock.AnythingOfType("*domain.TechnicianApplication")).Return(nil)
	technicians.On("Create", mock.Anything, mock.MatchedBy(func(tech *domain.Technician) bool {
		return tech.Email == "tech@x.com" && tech.Active && tech.Verified
	})).Return(nil)

	a, err := svc.ReviewApplication(context.Background(), "app-1", "admin-1", ReviewApplicationRequest{Status: "hired"})

	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationHired, a.Status)
	technicians.AssertExpectations(t)
}

func TestService_ReviewApplication_RehireIsIdempotent(t *testing.T) {
	svc, applications, technicians, _ := newTestService()

	applications.On("GetByID", mock.Anything, "app-1").
		Return(&domain.TechnicianApplication{ID: "app-1", Email: "tech@x.com", Status: domain.ApplicationHired}, nil)
	applications.On("Update", mock.Anything, mock.AnythingOfType("*domain.TechnicianApplication")).Return(nil)
	technicians.On("Create", mock.Anything, mock.AnythingOfType("*domain.Technician")).
		Return(repository.ErrDuplicate)

	_, err := svc.ReviewApplication(context.Background(), "app-1", "admin-1", ReviewApplicationRequest{Status: "hired"})

	assert.NoError(t, err)
}

func TestService_ReviewApplication_UnknownStatus(t *testing.T) {
	svc, applications, _, _ := newTestService()

	_, err := svc.ReviewApplication(context.Background(), "app-1", "admin-1", ReviewApplicationRequest{Status: "maybe"})

	assert.ErrorIs(t, err, ErrValidation)
	applications.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_ReviewApplication_NotFound(t *testing.T) {
	svc, applications, _, _ := newTestService()

	applications.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ReviewApplication(context.Background(), "ghost", "admin-1", ReviewApplicationRequest{Status: "rejected"})
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestService_UpdateBookingStatus_ForwardStep(t *testing.T) {
	svc, _, _, bookings := newTestService()

	steps := []struct {
		from, to domain.BookingStatus
	}{
		{domain.BookingPending, domain.BookingScheduled},
		{domain.BookingScheduled, domain.BookingConfirmed},
		{domain.BookingConfirmed, domain.BookingInProgress},
		{domain.BookingInProgress, domain.BookingCompleted},
	}
	for _, step := range steps {
		bookings.ExpectedCalls = nil
		bookings.On("GetByID", mock.Anything, "b-1").
			Return(&domain.Booking{ID: "b-1", Status: step.from}, nil)
		bookings.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

		b, err := svc.UpdateBookingStatus(context.Background(), "b-1", UpdateBookingStatusRequest{Status: string(step.to)})

		assert.NoError(t, err, "%s -> %s", step.from, step.to)
		assert.Equal(t, step.to, b.Status)
	}
}

func TestService_UpdateBookingStatus_NoSkipping(t *testing.T) {
	svc, _, _, bookings := newTestService()

	bookings.On("GetByID", mock.Anything, "b-1").
		Return(&domain.Booking{ID: "b-1", Status: domain.BookingPending}, nil)

	_, err := svc.UpdateBookingStatus(context.Background(), "b-1", UpdateBookingStatusRequest{Status: "completed"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_UpdateBookingStatus_CancelSetsTimestamp(t *testing.T) {
	svc, _, _, bookings := newTestService()

	bookings.On("GetByID", mock.Anything, "b-1").
		Return(&domain.Booking{ID: "b-1", Status: domain.BookingConfirmed}, nil)
	bookings.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.UpdateBookingStatus(context.Background(), "b-1", UpdateBookingStatusRequest{Status: "cancelled"})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assert.NotNil(t, b.CancelledAt)
}

func TestService_UpdateBookingStatus_TerminalStatesAreFinal(t *testing.T) {
	svc, _, _, bookings := newTestService()

	for _, status := range []domain.BookingStatus{domain.BookingCompleted, domain.BookingCancelled} {
		bookings.ExpectedCalls = nil
		bookings.On("GetByID", mock.Anything, "b-1").
			Return(&domain.Booking{ID: "b-1", Status: status}, nil)

		_, err := svc.UpdateBookingStatus(context.Background(), "b-1", UpdateBookingStatusRequest{Status: "cancelled"})
		assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", status)
	}
}

func TestService_ListBookings_Paged(t *testing.T) {
	svc, _, _, bookings := newTestService()

	bookings.On("ListAll", mock.Anything, 20, 20).
		Return([]domain.Booking{{ID: "b-1"}, {ID: "b-2"}}, nil)

	list, err := svc.ListBookings(context.Background(), 2, 0)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
}
