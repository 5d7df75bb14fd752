package domain

import "time"

type ContactKind string

const (
	ContactSupport    ContactKind = "support"
	ContactAI         ContactKind = "ai"
	ContactTechnician ContactKind = "technician"
)

// ChatContact is a conversation endpoint for one customer. LastMessage,
// LastMessageTime and UnreadCount are a display cache, refreshed on every
// send with last-write-wins semantics.
type ChatContact struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customer_id"`
	Kind            ContactKind `json:"kind"`
	TechnicianID    string      `json:"technician_id,omitempty"`
	Name            string      `json:"name"`
	Avatar          string      `json:"avatar,omitempty"`
	LastMessage     string      `json:"last_message,omitempty"`
	LastMessageTime *time.Time  `json:"last_message_time,omitempty"`
	UnreadCount     int         `json:"unread_count"`
	CreatedAt       time.Time   `json:"created_at"`
}

// ChatMessage is append-only. Sender name is denormalized at write time;
// renames do not propagate to old messages.
type ChatMessage struct {
	ID         string    `json:"id"`
	ChatID     string    `json:"chat_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
}
