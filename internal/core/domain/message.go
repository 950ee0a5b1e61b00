package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind selects the visual treatment of a transient message.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is a transient user-facing notification. The ID identifies the
// rendered element so that expiry removes exactly this message and no other.
type Message struct {
	ID        uuid.UUID
	Text      string
	Kind      MessageKind
	CreatedAt time.Time
}

// NewMessage stamps a message with a fresh ID and the current time.
func NewMessage(text string, kind MessageKind) Message {
	return Message{
		ID:        uuid.New(),
		Text:      text,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
}
