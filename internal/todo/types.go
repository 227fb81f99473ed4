package todo

import "time"

// Todo is a single todo item owned by one user.
type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Completed   bool
}

// ListInput filters and paginates a user's todos. Completed == nil means no filter.
// Page is 1-based.
type ListInput struct {
	Completed *bool
	Page      int
	Limit     int
}

// UpdateInput is a partial update; nil fields keep their current value.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Completed   *bool
}

// --- UseCase Outputs ---

type ListOutput struct {
	Todos []Todo
	Total int
	Page  int
	Limit int
}
