package postgre

import (
	"fmt"
	"strings"

	repo "todo-assistant/internal/conversation/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneConversation.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneConversationOptions) (string, []any) {
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

// buildPage renders LIMIT/OFFSET placeholders starting at $idx.
func buildPage(idx, limit, offset int) (string, []any) {
	var parts []string
	var args []any
	if limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, limit)
		idx++
	}
	if offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, offset)
	}
	return strings.Join(parts, " "), args
}
