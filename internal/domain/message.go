package domain

import (
	"time"
)

type MessageRole string

const (
	MessageRoleUser MessageRole = "user"
	MessageRoleBot  MessageRole = "bot"
)

// MessageMeta carries the render hints attached to a bot message.
type MessageMeta struct {
	Buttons     []Button `json:"buttons,omitempty"`
	InputType   string   `json:"inputType,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// Message is one entry in a conversation transcript. The __START__
// sentinel is never stored as a user message.
type Message struct {
	ID             string       `json:"id" gorm:"primaryKey"`
	ConversationID string       `json:"conversation_id" gorm:"index"`
	Role           MessageRole  `json:"role"`
	Content        string       `json:"content"`
	Metadata       *MessageMeta `json:"metadata,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time    `json:"created_at"`
}
