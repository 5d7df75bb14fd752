package chat

import "errors"

var (
	ErrEmptyContent = errors.New("message content cannot be empty")
	ErrChatNotFound = errors.New("chat not found")
)
