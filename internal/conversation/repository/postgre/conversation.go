package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-assistant/internal/conversation"
	repo "todo-assistant/internal/conversation/repository"
)

const conversationColumns = `id, user_id, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversation(s rowScanner) (conversation.Conversation, error) {
	var c conversation.Conversation
	err := s.Scan(&c.ID, &c.UserID, &c.CreatedAt)
	return c, err
}

func (r *implRepository) CreateConversation(ctx context.Context, opt repo.CreateConversationOptions) (conversation.Conversation, error) {
	query := `
		INSERT INTO conversations (id, user_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING ` + conversationColumns

	c, err := scanConversation(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConversation"), err)
		return conversation.Conversation{}, repo.ErrFailedToInsertConversation
	}
	return c, nil
}

func (r *implRepository) GetOneConversation(ctx context.Context, opt repo.GetOneConversationOptions) (conversation.Conversation, error) {
	where, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM conversations WHERE %s LIMIT 1", conversationColumns, where)

	c, err := scanConversation(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return conversation.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneConversation"), err)
		return conversation.Conversation{}, repo.ErrFailedToGetConversation
	}
	return c, nil
}

// ListConversations pages the user's conversations, most recently created first.
func (r *implRepository) ListConversations(ctx context.Context, opt repo.ListConversationsOptions) ([]conversation.Conversation, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversations WHERE user_id = $1`, opt.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListConversations"), err)
		return nil, 0, repo.ErrFailedToListConversations
	}

	page, args := buildPage(2, opt.Limit, opt.Offset)
	query := fmt.Sprintf(
		"SELECT %s FROM conversations WHERE user_id = $1 ORDER BY created_at DESC, id DESC %s",
		conversationColumns, page,
	)
	rows, err := r.db.QueryContext(ctx, query, append([]any{opt.UserID}, args...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListConversations"), err)
		return nil, 0, repo.ErrFailedToListConversations
	}
	defer rows.Close()

	var out []conversation.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListConversations"), err)
			return nil, 0, repo.ErrFailedToListConversations
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListConversations"), err)
		return nil, 0, repo.ErrFailedToListConversations
	}
	return out, total, nil
}
