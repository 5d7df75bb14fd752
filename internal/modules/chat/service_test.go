package chat

import (
	"context"
	"testing"
	"time"

	"homepro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateContact(ctx context.Context, c *domain.ChatContact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockChatRepository) ListContacts(ctx context.Context, customerID string) ([]domain.ChatContact, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatContact), args.Error(1)
}

func (m *MockChatRepository) GetContactForCustomer(ctx context.Context, chatID, customerID string) (*domain.ChatContact, error) {
	args := m.Called(ctx, chatID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatContact), args.Error(1)
}

func (m *MockChatRepository) CreateMessage(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatRepository) ListMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) UpdateContactSummary(ctx context.Context, chatID, lastMessage string, at time.Time, unreadCount int) error {
	args := m.Called(ctx, chatID, lastMessage, at, unreadCount)
	return args.Error(0)
}

type MockCustomerReader struct {
	mock.Mock
}

func (m *MockCustomerReader) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func newTestService() (*Service, *MockChatRepository, *MockCustomerReader) {
	chats := new(MockChatRepository)
	customers := new(MockCustomerReader)
	return NewService(chats, customers), chats, customers
}

func TestService_ListContacts_SeedsSupportOnFirstAccess(t *testing.T) {
	svc, chats, _ := newTestService()

	chats.On("ListContacts", mock.Anything, "cust-1").Return([]domain.ChatContact{}, nil)
	chats.On("CreateContact", mock.Anything, mock.MatchedBy(func(c *domain.ChatContact) bool {
		return c.Kind == domain.ContactSupport && c.CustomerID == "cust-1"
	})).Return(nil)

	contacts, err := svc.ListContacts(context.Background(), "cust-1")

	assert.NoError(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, domain.ContactSupport, contacts[0].Kind)
	assert.Equal(t, "HomePro Support", contacts[0].Name)
	chats.AssertExpectations(t)
}

func TestService_ListContacts_ExistingContactsNotReseeded(t *testing.T) {
	svc, chats, _ := newTestService()

	existing := []domain.ChatContact{
		{ID: "chat-1", CustomerID: "cust-1", Kind: domain.ContactSupport},
		{ID: "chat-2", CustomerID: "cust-1", Kind: domain.ContactTechnician},
	}
	chats.On("ListContacts", mock.Anything, "cust-1").Return(existing, nil)

	contacts, err := svc.ListContacts(context.Background(), "cust-1")

	assert.NoError(t, err)
	assert.Len(t, contacts, 2)
	chats.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything)
}

func TestService_ListMessages_OrderedLog(t *testing.T) {
	svc, chats, _ := newTestService()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	log := []domain.ChatMessage{
		{ID: "m-1", ChatID: "chat-1", Timestamp: base},
		{ID: "m-2", ChatID: "chat-1", Timestamp: base.Add(time.Minute)},
	}
	chats.On("GetContactForCustomer", mock.Anything, "chat-1", "cust-1").
		Return(&domain.ChatContact{ID: "chat-1", CustomerID: "cust-1"}, nil)
	chats.On("ListMessages", mock.Anything, "chat-1").Return(log, nil)

	msgs, err := svc.ListMessages(context.Background(), "chat-1", "cust-1")

	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.True(t, !msgs[1].Timestamp.Before(msgs[0].Timestamp))
}

func TestService_ListMessages_ForeignChatReadsAsNotFound(t *testing.T) {
	svc, chats, _ := newTestService()

	chats.On("GetContactForCustomer", mock.Anything, "chat-other", "cust-1").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListMessages(context.Background(), "chat-other", "cust-1")

	assert.ErrorIs(t, err, ErrChatNotFound)
	chats.AssertNotCalled(t, "ListMessages", mock.Anything, mock.Anything)
}

func TestService_Send_Success(t *testing.T) {
	svc, chats, customers := newTestService()

	chats.On("GetContactForCustomer", mock.Anything, "chat-1", "cust-1").
		Return(&domain.ChatContact{ID: "chat-1", CustomerID: "cust-1"}, nil)
	customers.On("GetByID", mock.Anything, "cust-1").
		Return(&domain.Customer{ID: "cust-1", Name: "Dana"}, nil)
	chats.On("CreateMessage", mock.Anything, mock.AnythingOfType("*domain.ChatMessage")).Return(nil)
	chats.On("UpdateContactSummary", mock.Anything, "chat-1", "hello there", mock.AnythingOfType("time.Time"), 0).
		Return(nil)

	msg, err := svc.Send(context.Background(), "chat-1", "cust-1", SendMessageRequest{Content: "hello there"})

	assert.NoError(t, err)
	assert.Equal(t, "hello there", msg.Content)
	assert.Equal(t, "Dana", msg.SenderName)
	assert.Equal(t, "text", msg.Type)
	assert.NotEmpty(t, msg.ID)
	chats.AssertExpectations(t)
}

func TestService_Send_TrimsContent(t *testing.T) {
	svc, chats, customers := newTestService()

	chats.On("GetContactForCustomer", mock.Anything, "chat-1", "cust-1").
		Return(&domain.ChatContact{ID: "chat-1"}, nil)
	customers.On("GetByID", mock.Anything, "cust-1").
		Return(&domain.Customer{ID: "cust-1", Name: "Dana"}, nil)
	chats.On("CreateMessage", mock.Anything, mock.AnythingOfType("*domain.ChatMessage")).Return(nil)
	chats.On("UpdateContactSummary", mock.Anything, "chat-1", "padded", mock.AnythingOfType("time.Time"), 0).
		Return(nil)

	msg, err := svc.Send(context.Background(), "chat-1", "cust-1", SendMessageRequest{Content: "  padded \n"})

	assert.NoError(t, err)
	assert.Equal(t, "padded", msg.Content)
}

func TestService_Send_RejectsWhitespaceOnly(t *testing.T) {
	svc, chats, _ := newTestService()

	_, err := svc.Send(context.Background(), "chat-1", "cust-1", SendMessageRequest{Content: "   \t\n"})

	assert.ErrorIs(t, err, ErrEmptyContent)
	chats.AssertNotCalled(t, "GetContactForCustomer", mock.Anything, mock.Anything, mock.Anything)
	chats.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
}

func TestService_Send_ForeignChatReadsAsNotFound(t *testing.T) {
	svc, chats, _ := newTestService()

	chats.On("GetContactForCustomer", mock.Anything, "chat-other", "cust-1").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Send(context.Background(), "chat-other", "cust-1", SendMessageRequest{Content: "hi"})

	assert.ErrorIs(t, err, ErrChatNotFound)
	chats.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
}

func TestService_Send_SummaryFailureDoesNotFailSend(t *testing.T) {
	svc, chats, customers := newTestService()

	chats.On("GetContactForCustomer", mock.Anything, "chat-1", "cust-1").
		Return(&domain.ChatContact{ID: "chat-1"}, nil)
	customers.On("GetByID", mock.Anything, "cust-1").
		Return(&domain.Customer{ID: "cust-1", Name: "Dana"}, nil)
	chats.On("CreateMessage", mock.Anything, mock.AnythingOfType("*domain.ChatMessage")).Return(nil)
	chats.On("UpdateContactSummary", mock.Anything, "chat-1", "hi", mock.AnythingOfType("time.Time"), 0).
		Return(gorm.ErrInvalidDB)

	msg, err := svc.Send(context.Background(), "chat-1", "cust-1", SendMessageRequest{Content: "hi"})

	assert.NoError(t, err)
	assert.NotNil(t, msg)
}

func TestService_Send_FallbackSenderName(t *testing.T) {
	svc, chats, customers := newTestService()

	chats.On("GetContactForCustomer", mock.Anything, "chat-1", "cust-1").
		Return(&domain.ChatContact{ID: "chat-1"}, nil)
	customers.On("GetByID", mock.Anything, "cust-1").Return(nil, gorm.ErrRecordNotFound)
	chats.On("CreateMessage", mock.Anything, mock.AnythingOfType("*domain.ChatMessage")).Return(nil)
	chats.On("UpdateContactSummary", mock.Anything, "chat-1", "hi", mock.AnythingOfType("time.Time"), 0).
		Return(nil)

	msg, err := svc.Send(context.Background(), "chat-1", "cust-1", SendMessageRequest{Content: "hi"})

	assert.NoError(t, err)
	assert.Equal(t, "Customer", msg.SenderName)
}
