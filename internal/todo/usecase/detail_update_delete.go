package usecase

import (
	"context"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

// Detail returns one of the caller's todos.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (todo.Todo, error) {
	return uc.getOwned(ctx, sc, id)
}

// ToggleCompletion flips the completion flag of one of the caller's todos.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, sc model.Scope, id string) (todo.Todo, error) {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return todo.Todo{}, err
	}

	return uc.save(ctx, repo.UpdateTodoOptions{
		ID:          existing.ID,
		UserID:      existing.UserID,
		Title:       existing.Title,
		Description: existing.Description,
		Completed:   !existing.Completed,
	})
}

// Update applies the non-nil fields of input to one of the caller's todos.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateInput) (todo.Todo, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return todo.Todo{}, err
	}

	return uc.save(ctx, repo.UpdateTodoOptions{
		ID:          existing.ID,
		UserID:      existing.UserID,
		Title:       coalesce(input.Title, existing.Title),
		Description: coalesce(input.Description, existing.Description),
		Completed:   coalesceBool(input.Completed, existing.Completed),
	})
}

// Delete removes one of the caller's todos. A missing or foreign todo is
// reported as false, not as an error.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (bool, error) {
	if sc.UserID == "" {
		return false, todo.ErrMissingScope
	}
	if !isValidID(id) {
		return false, nil
	}

	deleted, err := uc.repo.DeleteTodo(ctx, repo.DeleteTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return false, err
	}
	return deleted, nil
}

// getOwned loads a todo and checks it belongs to the caller.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (todo.Todo, error) {
	if sc.UserID == "" {
		return todo.Todo{}, todo.ErrMissingScope
	}
	if !isValidID(id) {
		return todo.Todo{}, todo.ErrNotFound
	}

	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneTodo: %v", err)
		return todo.Todo{}, err
	}
	if existing.ID == "" {
		return todo.Todo{}, todo.ErrNotFound
	}
	if existing.UserID != sc.UserID {
		return todo.Todo{}, todo.ErrForbidden
	}
	return existing, nil
}

func (uc *implUseCase) save(ctx context.Context, opt repo.UpdateTodoOptions) (todo.Todo, error) {
	t, err := uc.repo.UpdateTodo(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.save UpdateTodo: %v", err)
		return todo.Todo{}, err
	}
	// Deleted between the read and the write.
	if t.ID == "" {
		return todo.Todo{}, todo.ErrNotFound
	}
	return t, nil
}
