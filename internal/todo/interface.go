package todo

import (
	"context"

	"todo-assistant/internal/model"
)

// UseCase is the todo store every caller goes through. All operations are
// scoped to sc.UserID.
type UseCase interface {
	// List returns the user's todos newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Todo, error)
	Detail(ctx context.Context, sc model.Scope, id string) (Todo, error)
	// ToggleCompletion flips the completion flag. Fails with ErrNotFound or ErrForbidden.
	ToggleCompletion(ctx context.Context, sc model.Scope, id string) (Todo, error)
	// Update fails with ErrNotFound or ErrForbidden.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (Todo, error)
	// Delete reports false when the todo does not exist or belongs to someone else.
	Delete(ctx context.Context, sc model.Scope, id string) (bool, error)
}
