package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-assistant/internal/conversation"
	repo "todo-assistant/internal/conversation/repository"
)

const messageColumns = `id, conversation_id, role, content, seq, created_at`

func scanMessage(s rowScanner) (conversation.Message, error) {
	var m conversation.Message
	var role string
	err := s.Scan(&m.ID, &m.ConversationID, &role, &m.Content, &m.Seq, &m.CreatedAt)
	m.Role = conversation.Role(role)
	return m, err
}

// CreateMessage appends a message only when the conversation belongs to
// opt.UserID. seq comes from the table's sequence.
func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (conversation.Message, error) {
	query := `
		INSERT INTO messages (id, conversation_id, role, content, created_at)
		SELECT $1, c.id, $3, $4, NOW()
		FROM conversations c
		WHERE c.id = $2 AND c.user_id = $5
		RETURNING ` + messageColumns

	m, err := scanMessage(r.db.QueryRowContext(ctx, query, opt.ID, opt.ConversationID, string(opt.Role), opt.Content, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return conversation.Message{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return conversation.Message{}, repo.ErrFailedToInsertMessage
	}
	return m, nil
}

// ListMessages pages a conversation newest first by seq.
func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]conversation.Message, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE conversation_id = $1`, opt.ConversationID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListMessages"), err)
		return nil, 0, repo.ErrFailedToListMessages
	}

	page, args := buildPage(2, opt.Limit, opt.Offset)
	query := fmt.Sprintf(
		"SELECT %s FROM messages WHERE conversation_id = $1 ORDER BY seq DESC %s",
		messageColumns, page,
	)
	rows, err := r.db.QueryContext(ctx, query, append([]any{opt.ConversationID}, args...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, 0, repo.ErrFailedToListMessages
	}
	defer rows.Close()

	var out []conversation.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, 0, repo.ErrFailedToListMessages
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMessages"), err)
		return nil, 0, repo.ErrFailedToListMessages
	}
	return out, total, nil
}
