package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
	SenderSystem    Sender = "system"
)

// MessageType determines how a message is rendered and which panel, if any,
// its content belongs to.
type MessageType string

const (
	TypeText          MessageType = "text"
	TypeCode          MessageType = "code"
	TypeFile          MessageType = "file"
	TypeVisualization MessageType = "visualization"
	TypeSuggestion    MessageType = "suggestion"
)

// Message is a single turn in a conversation. ID, Sender and Timestamp are
// fixed at creation; Content may be replaced by an explicit edit.
type Message struct {
	ID        string
	Content   string
	Sender    Sender
	Type      MessageType
	Language  string // set only when Type == TypeCode
	Timestamp time.Time
}

// NewUserMessage creates a user text message with a fresh ID.
func NewUserMessage(content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Content:   content,
		Sender:    SenderUser,
		Type:      TypeText,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates an assistant message with a fresh ID.
func NewAssistantMessage(content string, msgType MessageType, language string) Message {
	return Message{
		ID:        uuid.New().String(),
		Content:   content,
		Sender:    SenderAssistant,
		Type:      msgType,
		Language:  language,
		Timestamp: time.Now(),
	}
}

// IsCode reports whether the message carries source code.
func (m Message) IsCode() bool {
	return m.Type == TypeCode
}
