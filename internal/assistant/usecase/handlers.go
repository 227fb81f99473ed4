package usecase

import (
	"context"
	"fmt"
	"strings"

	"todo-assistant/internal/model"
	"todo-assistant/internal/router"
	"todo-assistant/internal/todo"
)

func (uc *implUseCase) handleAdd(ctx context.Context, sc model.Scope, text string) (string, error) {
	t, err := uc.todoUC.Create(ctx, sc, todo.CreateInput{
		Title: router.ExtractTitle(text),
	})
	if err != nil {
		return "", storeError(err)
	}
	return fmt.Sprintf(msgAdded, t.Title), nil
}

func (uc *implUseCase) handleList(ctx context.Context, sc model.Scope, text string) (string, error) {
	completed := router.ParseListFilter(text)

	out, err := uc.todoUC.List(ctx, sc, todo.ListInput{
		Completed: completed,
		Page:      1,
		Limit:     listLimit,
	})
	if err != nil {
		return "", storeError(err)
	}

	if len(out.Todos) == 0 {
		switch {
		case completed == nil:
			return msgNoTodos, nil
		case *completed:
			return msgNoCompletedTodos, nil
		default:
			return msgNoPendingTodos, nil
		}
	}

	var b strings.Builder
	switch {
	case completed == nil:
		b.WriteString(msgAllHeader)
	case *completed:
		b.WriteString(msgCompletedHeader)
	default:
		b.WriteString(msgPendingHeader)
	}
	for _, t := range out.Todos {
		b.WriteString("\n- ")
		b.WriteString(t.Title)
	}
	return b.String(), nil
}

func (uc *implUseCase) handleComplete(ctx context.Context, sc model.Scope) (string, error) {
	id, err := uc.extractTargetTodoID(ctx, sc)
	if err != nil {
		return "", storeError(err)
	}
	if id == "" {
		return msgCompleteNoTarget, nil
	}

	t, err := uc.todoUC.ToggleCompletion(ctx, sc, id)
	if err != nil {
		return "", storeError(err)
	}

	status := statusIncomplete
	if t.Completed {
		status = statusCompleted
	}
	return fmt.Sprintf(msgMarked, t.Title, status), nil
}

func (uc *implUseCase) handleDelete(ctx context.Context, sc model.Scope) (string, error) {
	id, err := uc.extractTargetTodoID(ctx, sc)
	if err != nil {
		return "", storeError(err)
	}
	if id == "" {
		return msgDeleteNoTarget, nil
	}

	deleted, err := uc.todoUC.Delete(ctx, sc, id)
	if err != nil {
		return "", storeError(err)
	}
	if !deleted {
		return msgDeleteRefused, nil
	}
	return msgDeleted, nil
}

// handleUpdate renames the most recent todo. It looks the todo up itself and
// strips the update verbs case-sensitively from the raw text.
func (uc *implUseCase) handleUpdate(ctx context.Context, sc model.Scope, text string) (string, error) {
	out, err := uc.todoUC.List(ctx, sc, todo.ListInput{Page: 1, Limit: 1})
	if err != nil {
		return "", storeError(err)
	}
	if len(out.Todos) == 0 {
		return msgNothingToUpdate, nil
	}

	title := router.ExtractUpdateTitle(text)
	if title == "" {
		return msgUpdateNoTitle, nil
	}

	t, err := uc.todoUC.Update(ctx, sc, todo.UpdateInput{
		ID:    out.Todos[0].ID,
		Title: &title,
	})
	if err != nil {
		return "", storeError(err)
	}
	return fmt.Sprintf(msgUpdated, t.Title), nil
}

func (uc *implUseCase) handleGeneralQuery(ctx context.Context, sc model.Scope, text, convID, userMsgID string) (string, error) {
	history, err := uc.recentHistory(ctx, sc, convID, userMsgID)
	if err != nil {
		return "", &handlerError{kind: kindStore, err: err}
	}

	reply, err := uc.provider.Complete(ctx, history, text)
	if err != nil {
		return "", aiError(err)
	}
	return reply, nil
}

// extractTargetTodoID returns the id of the user's most recently created
// todo, or "" when the user has none.
func (uc *implUseCase) extractTargetTodoID(ctx context.Context, sc model.Scope) (string, error) {
	out, err := uc.todoUC.List(ctx, sc, todo.ListInput{Page: 1, Limit: 1})
	if err != nil {
		return "", err
	}
	if len(out.Todos) == 0 {
		return "", nil
	}
	return out.Todos[0].ID, nil
}
