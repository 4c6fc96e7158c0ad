package model

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ConversationID string

// NewConversationID mints a time-based conversation ID. Uniqueness is only
// required within a single client lifetime; the store never assigns IDs.
func NewConversationID(now time.Time) ConversationID {
	return ConversationID(fmt.Sprintf("conv_%d", now.UnixMilli()))
}

// Message is one turn of a conversation. A message is immutable once appended
// and its position in the log is the turn order.
type Message struct {
	Role      Role            `json:"role"`
	Content   string          `json:"content"`
	Sources   []Source        `json:"sources,omitempty"`
	Reasoning []ReasoningStep `json:"reasoning,omitempty"`
}

// ReasoningStep is one labeled stage of the agent's intermediate trace,
// attached to an assistant turn.
type ReasoningStep struct {
	Step        string `json:"step"`
	Description string `json:"description"`
}

// ConversationSummary is a conversation as known to the list view.
// MessageCount is whatever the store reported; it may lag behind the loaded
// log and is treated as a display hint, never reconciled by the client.
type ConversationSummary struct {
	ID           ConversationID `json:"id"`
	Title        string         `json:"title"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at,omitempty"`
	MessageCount int            `json:"message_count"`
}

// Conversation is a fully loaded conversation.
type Conversation struct {
	ID       ConversationID `json:"id"`
	Title    string         `json:"title,omitempty"`
	Messages []Message      `json:"messages"`
}
