package assistant

import (
	"context"

	"todo-assistant/internal/model"
)

// UseCase turns user messages into todo operations or AI replies and keeps
// the conversation transcript.
type UseCase interface {
	// ProcessCommand classifies the message and runs the matching todo
	// operation, falling back to the AI model. Handler failures become the
	// reply text; only transcript failures are returned as errors.
	ProcessCommand(ctx context.Context, sc model.Scope, input ProcessCommandInput) (ProcessCommandOutput, error)
	// Chat always forwards the message to the AI model.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}
