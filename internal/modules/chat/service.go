package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"homepro/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	chats     ChatRepository
	customers CustomerReader
}

func NewService(chats ChatRepository, customers CustomerReader) *Service {
	return &Service{
		chats:     chats,
		customers: customers,
	}
}

// ListContacts returns the caller's conversation endpoints, seeding the
// support contact on first access so every customer always has somewhere
// to write.
func (s *Service) ListContacts(ctx context.Context, customerID string) ([]domain.ChatContact, error) {
	contacts, err := s.chats.ListContacts(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(contacts) > 0 {
		return contacts, nil
	}

	support := &domain.ChatContact{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Kind:       domain.ContactSupport,
		Name:       "HomePro Support",
	}
	if err := s.chats.CreateContact(ctx, support); err != nil {
		return nil, err
	}
	return []domain.ChatContact{*support}, nil
}

// ListMessages returns the chat log in non-decreasing timestamp order.
// Foreign chat ids read as not found.
func (s *Service) ListMessages(ctx context.Context, chatID, customerID string) ([]domain.ChatMessage, error) {
	if _, err := s.chats.GetContactForCustomer(ctx, chatID, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return s.chats.ListMessages(ctx, chatID)
}

// Send appends to the per-chat log and refreshes the contact's preview
// fields. The summary update is last-write-wins; it is a display cache.
func (s *Service) Send(ctx context.Context, chatID, customerID string, req SendMessageRequest) (*domain.ChatMessage, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.chats.GetContactForCustomer(ctx, chatID, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	senderName := "Customer"
	if c, err := s.customers.GetByID(ctx, customerID); err == nil {
		senderName = c.Name
	}

	msgType := req.Type
	if msgType == "" {
		msgType = "text"
	}

	msg := &domain.ChatMessage{
		ID:         uuid.NewString(),
		ChatID:     chatID,
		SenderID:   customerID,
		SenderName: senderName,
		Content:    content,
		Type:       msgType,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.chats.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	// the caller just wrote here, so their unread counter resets
	if err := s.chats.UpdateContactSummary(ctx, chatID, content, msg.Timestamp, 0); err != nil {
		log.Printf("chat: summary update failed for %s: %v", chatID, err)
	}

	return msg, nil
}
