package postgre

import (
	"fmt"
	"strings"

	repo "todo-assistant/internal/todo/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneTodo.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTodoOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildFilter builds the WHERE clause + args shared by count and list.
func (r *implRepository) buildFilter(opt repo.ListTodosOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE + ORDER + LIMIT + OFFSET for ListTodos.
// Newest first; id breaks created_at ties so "most recent" is stable.
func (r *implRepository) buildListQuery(opt repo.ListTodosOptions) (string, []any) {
	where, args := r.buildFilter(opt)
	idx := len(args) + 1

	parts := []string{"WHERE " + where, "ORDER BY created_at DESC, id DESC"}

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
