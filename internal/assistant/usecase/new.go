package usecase

import (
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/todo"
	"todo-assistant/pkg/llmprovider"
	"todo-assistant/pkg/log"
)

const (
	// historyLimit caps the transcript sent to the AI model.
	historyLimit = 10
	// listLimit caps the todos rendered by a list command.
	listLimit = 20
)

type implUseCase struct {
	l        log.Logger
	todoUC   todo.UseCase
	convUC   conversation.UseCase
	provider llmprovider.Provider
}

// New creates the assistant dispatcher. provider is built once at startup
// and shared by every request.
func New(l log.Logger, todoUC todo.UseCase, convUC conversation.UseCase, provider llmprovider.Provider) *implUseCase {
	return &implUseCase{
		l:        l,
		todoUC:   todoUC,
		convUC:   convUC,
		provider: provider,
	}
}
