package repository

// CreateTodoOptions holds parameters for inserting a new todo.
type CreateTodoOptions struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
}

// GetOneTodoOptions holds filter parameters for fetching a single todo.
// All non-empty fields are applied as AND conditions.
type GetOneTodoOptions struct {
	ID     string
	UserID string
}

// ListTodosOptions holds filter and pagination parameters for listing todos.
type ListTodosOptions struct {
	UserID    string
	Completed *bool
	Limit     int
	Offset    int
}

// UpdateTodoOptions carries the full new state of a todo.
type UpdateTodoOptions struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
}

// DeleteTodoOptions identifies the todo to delete; both fields are required.
type DeleteTodoOptions struct {
	ID     string
	UserID string
}
