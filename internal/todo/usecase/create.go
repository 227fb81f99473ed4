package usecase

import (
	"context"

	"github.com/google/uuid"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

// Create stores a new todo for the caller. Titles are not validated; an
// empty title is a valid todo.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.Todo, error) {
	if sc.UserID == "" {
		return todo.Todo{}, todo.ErrMissingScope
	}

	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		ID:          uuid.NewString(),
		UserID:      sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.Todo{}, err
	}

	return t, nil
}
