package repository

import (
	"context"

	"github.com/scholaragent/scholaragent/pkg/model"
)

// Repository defines the interface for the remote conversation store
type Repository interface {
	// ListConversations retrieves conversation summaries
	ListConversations(ctx context.Context) ([]model.ConversationSummary, error)

	// GetConversation retrieves a full conversation by ID
	GetConversation(ctx context.Context, id model.ConversationID) (*model.Conversation, error)

	// AppendMessage persists one message to the conversation, creating the
	// conversation server-side on first append
	AppendMessage(ctx context.Context, id model.ConversationID, msg *model.Message) error

	// DeleteConversation deletes the conversation and all its messages.
	// Deleting a conversation that no longer exists is not an error.
	DeleteConversation(ctx context.Context, id model.ConversationID) error
}
