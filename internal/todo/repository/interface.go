package repository

import (
	"context"

	"todo-assistant/internal/todo"
)

// Repository is the data access interface for todos.
type Repository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (todo.Todo, error)
	// GetOneTodo returns a zero Todo (ID == "") when nothing matches.
	GetOneTodo(ctx context.Context, opt GetOneTodoOptions) (todo.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]todo.Todo, int, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (todo.Todo, error)
	// DeleteTodo reports whether a row was removed.
	DeleteTodo(ctx context.Context, opt DeleteTodoOptions) (bool, error)
}
