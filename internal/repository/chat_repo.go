package repository

import (
	"context"
	"time"

	"homepro/internal/domain"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

type chatContactModel struct {
	ID              string     `gorm:"column:id;primaryKey"`
	CustomerID      string     `gorm:"column:customer_id;index"`
	Kind            string     `gorm:"column:kind"`
	TechnicianID    *string    `gorm:"column:technician_id"`
	Name            string     `gorm:"column:name"`
	Avatar          *string    `gorm:"column:avatar"`
	LastMessage     *string    `gorm:"column:last_message"`
	LastMessageTime *time.Time `gorm:"column:last_message_time"`
	UnreadCount     int        `gorm:"column:unread_count"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (chatContactModel) TableName() string { return "chat_contacts" }

type chatMessageModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ChatID     string    `gorm:"column:chat_id;index"`
	SenderID   string    `gorm:"column:sender_id"`
	SenderName string    `gorm:"column:sender_name"`
	Content    string    `gorm:"column:content"`
	Type       string    `gorm:"column:type"`
	Timestamp  time.Time `gorm:"column:timestamp"`
}

func (chatMessageModel) TableName() string { return "chat_messages" }

func toDomainContact(m chatContactModel) *domain.ChatContact {
	var techID, avatar, lastMsg string
	if m.TechnicianID != nil {
		techID = *m.TechnicianID
	}
	if m.Avatar != nil {
		avatar = *m.Avatar
	}
	if m.LastMessage != nil {
		lastMsg = *m.LastMessage
	}

	return &domain.ChatContact{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		Kind:            domain.ContactKind(m.Kind),
		TechnicianID:    techID,
		Name:            m.Name,
		Avatar:          avatar,
		LastMessage:     lastMsg,
		LastMessageTime: m.LastMessageTime,
		UnreadCount:     m.UnreadCount,
		CreatedAt:       m.CreatedAt,
	}
}

func toDomainMessage(m chatMessageModel) domain.ChatMessage {
	return domain.ChatMessage{
		ID:         m.ID,
		ChatID:     m.ChatID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Content:    m.Content,
		Type:       m.Type,
		Timestamp:  m.Timestamp,
	}
}

func (r *ChatRepository) CreateContact(ctx context.Context, c *domain.ChatContact) error {
	var techID, avatar *string
	if c.TechnicianID != "" {
		v := c.TechnicianID
		techID = &v
	}
	if c.Avatar != "" {
		v := c.Avatar
		avatar = &v
	}

	m := chatContactModel{
		ID:           c.ID,
		CustomerID:   c.CustomerID,
		Kind:         string(c.Kind),
		TechnicianID: techID,
		Name:         c.Name,
		Avatar:       avatar,
		UnreadCount:  c.UnreadCount,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = *toDomainContact(m)
	return nil
}

func (r *ChatRepository) ListContacts(ctx context.Context, customerID string) ([]domain.ChatContact, error) {
	var models []chatContactModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.ChatContact, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainContact(m))
	}
	return out, nil
}

// GetContactForCustomer scopes the lookup to the owning customer; a foreign
// chat id reads as not found.
func (r *ChatRepository) GetContactForCustomer(ctx context.Context, chatID, customerID string) (*domain.ChatContact, error) {
	var m chatContactModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", chatID, customerID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainContact(m), nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *domain.ChatMessage) error {
	m := chatMessageModel{
		ID:         msg.ID,
		ChatID:     msg.ChatID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Content:    msg.Content,
		Type:       msg.Type,
		Timestamp:  msg.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*msg = toDomainMessage(m)
	return nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	var models []chatMessageModel
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("timestamp ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.ChatMessage, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainMessage(m))
	}
	return out, nil
}

// UpdateContactSummary refreshes the denormalized preview fields.
// Last write wins; the summary is a display cache, not source of truth.
func (r *ChatRepository) UpdateContactSummary(ctx context.Context, chatID, lastMessage string, at time.Time, unreadCount int) error {
	return r.db.WithContext(ctx).
		Model(&chatContactModel{}).
		Where("id = ?", chatID).
		Updates(map[string]interface{}{
			"last_message":      lastMessage,
			"last_message_time": at,
			"unread_count":      unreadCount,
		}).Error
}
