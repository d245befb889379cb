package model

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a message in the thread
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one entry of the conversation thread
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsError   bool      `json:"is_error,omitempty"`
}

// NewMessage creates a message stamped with a fresh ID and the current time
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
