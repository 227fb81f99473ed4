package repository

import (
	"context"

	"todo-assistant/internal/conversation"
)

// Repository is the data access interface for conversations and messages.
type Repository interface {
	CreateConversation(ctx context.Context, opt CreateConversationOptions) (conversation.Conversation, error)
	// GetOneConversation returns a zero Conversation when nothing matches.
	GetOneConversation(ctx context.Context, opt GetOneConversationOptions) (conversation.Conversation, error)
	ListConversations(ctx context.Context, opt ListConversationsOptions) ([]conversation.Conversation, int, error)

	// CreateMessage returns a zero Message when the conversation is not owned by opt.UserID.
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (conversation.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]conversation.Message, int, error)
}
