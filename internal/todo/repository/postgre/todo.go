package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

const todoColumns = `id, user_id, title, description, completed, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(s rowScanner) (todo.Todo, error) {
	var t todo.Todo
	err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// CreateTodo inserts a new todo row and returns the created entity.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (todo.Todo, error) {
	query := `
		INSERT INTO todos (id, user_id, title, description, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + todoColumns

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID, opt.Title, opt.Description, opt.Completed))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTodo retrieves a single todo by the provided filters.
// Not found is a zero-value Todo, not an error.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (todo.Todo, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM todos WHERE %s LIMIT 1", todoColumns, mods)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return todo.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return todo.Todo{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTodos returns one page of todos and the total count for the filter.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]todo.Todo, int, error) {
	countMods, countArgs := r.buildFilter(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM todos WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM todos %s", todoColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var todos []todo.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTodos"), err)
			return nil, 0, repo.ErrFailedToList
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTodos"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return todos, total, nil
}

// UpdateTodo overwrites a todo owned by opt.UserID. Returns a zero Todo when no row matched.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (todo.Todo, error) {
	query := `
		UPDATE todos
		SET title = $1, description = $2, completed = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING ` + todoColumns

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, opt.Title, opt.Description, opt.Completed, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return todo.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTodo removes a todo owned by opt.UserID.
func (r *implRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) (bool, error) {
	const query = `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTodo"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
