package usecase

import (
	"context"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

// List returns a page of the caller's todos, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListInput) (todo.ListOutput, error) {
	if sc.UserID == "" {
		return todo.ListOutput{}, todo.ErrMissingScope
	}

	page, limit := normalizePage(input.Page, input.Limit)

	todos, total, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{
		UserID:    sc.UserID,
		Completed: input.Completed,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListOutput{}, err
	}

	return todo.ListOutput{
		Todos: todos,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
