package chat

import (
	"context"
	"time"

	"homepro/internal/domain"
)

type ChatRepository interface {
	CreateContact(ctx context.Context, c *domain.ChatContact) error
	ListContacts(ctx context.Context, customerID string) ([]domain.ChatContact, error)
	GetContactForCustomer(ctx context.Context, chatID, customerID string) (*domain.ChatContact, error)
	CreateMessage(ctx context.Context, msg *domain.ChatMessage) error
	ListMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error)
	UpdateContactSummary(ctx context.Context, chatID, lastMessage string, at time.Time, unreadCount int) error
}

// CustomerReader supplies the sender name denormalized onto each message.
type CustomerReader interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}
