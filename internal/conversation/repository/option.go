package repository

import "todo-assistant/internal/conversation"

type CreateConversationOptions struct {
	ID     string
	UserID string
}

// GetOneConversationOptions filters by all non-empty fields.
type GetOneConversationOptions struct {
	ID     string
	UserID string
}

type ListConversationsOptions struct {
	UserID string
	Limit  int
	Offset int
}

type CreateMessageOptions struct {
	ID             string
	ConversationID string
	UserID         string
	Role           conversation.Role
	Content        string
}

type ListMessagesOptions struct {
	ConversationID string
	Limit          int
	Offset         int
}
