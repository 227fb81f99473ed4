package conversation

import (
	"context"

	"todo-assistant/internal/model"
)

// UseCase stores conversations and their messages. Every call is scoped to sc.UserID.
type UseCase interface {
	// ListRecent returns the user's conversations, most recently created first.
	ListRecent(ctx context.Context, sc model.Scope, page, limit int) (ListConversationsOutput, error)
	Create(ctx context.Context, sc model.Scope) (Conversation, error)
	// AppendMessage fails with ErrNotFound when the conversation is not the caller's.
	AppendMessage(ctx context.Context, sc model.Scope, input AppendMessageInput) (Message, error)
	// ListMessages returns newest-first pages ordered by Seq.
	ListMessages(ctx context.Context, sc model.Scope, input ListMessagesInput) (ListMessagesOutput, error)
}
