package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"todo-assistant/internal/conversation"
	repo "todo-assistant/internal/conversation/repository"
	"todo-assistant/internal/conversation/usecase"
	"todo-assistant/internal/model"
	"todo-assistant/pkg/log"
)

type memRepo struct {
	convs   []conversation.Conversation
	msgs    []conversation.Message
	seq     int64
	failAll bool
}

func (m *memRepo) CreateConversation(ctx context.Context, opt repo.CreateConversationOptions) (conversation.Conversation, error) {
	if m.failAll {
		return conversation.Conversation{}, repo.ErrFailedToInsertConversation
	}
	c := conversation.Conversation{ID: opt.ID, UserID: opt.UserID, CreatedAt: time.Now()}
	m.convs = append(m.convs, c)
	return c, nil
}

func (m *memRepo) GetOneConversation(ctx context.Context, opt repo.GetOneConversationOptions) (conversation.Conversation, error) {
	for _, c := range m.convs {
		if c.ID == opt.ID && (opt.UserID == "" || c.UserID == opt.UserID) {
			return c, nil
		}
	}
	return conversation.Conversation{}, nil
}

func (m *memRepo) ListConversations(ctx context.Context, opt repo.ListConversationsOptions) ([]conversation.Conversation, int, error) {
	var out []conversation.Conversation
	for i := len(m.convs) - 1; i >= 0; i-- {
		if m.convs[i].UserID == opt.UserID {
			out = append(out, m.convs[i])
		}
	}
	total := len(out)
	return page(out, opt.Limit, opt.Offset), total, nil
}

func (m *memRepo) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (conversation.Message, error) {
	c, _ := m.GetOneConversation(ctx, repo.GetOneConversationOptions{ID: opt.ConversationID, UserID: opt.UserID})
	if c.ID == "" {
		return conversation.Message{}, nil
	}
	m.seq++
	msg := conversation.Message{
		ID:             opt.ID,
		ConversationID: opt.ConversationID,
		Role:           opt.Role,
		Content:        opt.Content,
		Seq:            m.seq,
	}
	m.msgs = append(m.msgs, msg)
	return msg, nil
}

func (m *memRepo) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]conversation.Message, int, error) {
	var out []conversation.Message
	for i := len(m.msgs) - 1; i >= 0; i-- {
		if m.msgs[i].ConversationID == opt.ConversationID {
			out = append(out, m.msgs[i])
		}
	}
	total := len(out)
	return page(out, opt.Limit, opt.Offset), total, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func TestConversationUseCase(t *testing.T) {
	ctx := context.Background()
	alice := model.Scope{UserID: "alice"}
	bob := model.Scope{UserID: "bob"}

	t.Run("CreateAndListRecent", func(t *testing.T) {
		uc := usecase.New(&memRepo{}, log.NewNop())

		first, err := uc.Create(ctx, alice)
		require.NoError(t, err)
		second, err := uc.Create(ctx, alice)
		require.NoError(t, err)
		_, err = uc.Create(ctx, bob)
		require.NoError(t, err)

		out, err := uc.ListRecent(ctx, alice, 1, 1)
		require.NoError(t, err)
		require.Equal(t, 2, out.Total)
		require.Len(t, out.Conversations, 1)
		require.Equal(t, second.ID, out.Conversations[0].ID)
		require.NotEqual(t, first.ID, second.ID)
	})

	t.Run("MissingScope", func(t *testing.T) {
		uc := usecase.New(&memRepo{}, log.NewNop())
		_, err := uc.Create(ctx, model.Scope{})
		require.ErrorIs(t, err, conversation.ErrMissingScope)
	})

	t.Run("AppendMessageOrdersBySeq", func(t *testing.T) {
		uc := usecase.New(&memRepo{}, log.NewNop())
		c, err := uc.Create(ctx, alice)
		require.NoError(t, err)

		u, err := uc.AppendMessage(ctx, alice, conversation.AppendMessageInput{ConversationID: c.ID, Role: conversation.RoleUser, Content: "hi"})
		require.NoError(t, err)
		a, err := uc.AppendMessage(ctx, alice, conversation.AppendMessageInput{ConversationID: c.ID, Role: conversation.RoleAssistant, Content: "hello"})
		require.NoError(t, err)
		require.Less(t, u.Seq, a.Seq)

		out, err := uc.ListMessages(ctx, alice, conversation.ListMessagesInput{ConversationID: c.ID})
		require.NoError(t, err)
		require.Equal(t, 2, out.Total)
		require.Equal(t, "hello", out.Messages[0].Content)
		require.Equal(t, "hi", out.Messages[1].Content)
	})

	t.Run("AppendToOthersConversation", func(t *testing.T) {
		uc := usecase.New(&memRepo{}, log.NewNop())
		c, err := uc.Create(ctx, alice)
		require.NoError(t, err)

		_, err = uc.AppendMessage(ctx, bob, conversation.AppendMessageInput{ConversationID: c.ID, Role: conversation.RoleUser, Content: "x"})
		require.ErrorIs(t, err, conversation.ErrNotFound)

		_, err = uc.ListMessages(ctx, bob, conversation.ListMessagesInput{ConversationID: c.ID})
		require.ErrorIs(t, err, conversation.ErrNotFound)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		uc := usecase.New(&memRepo{}, log.NewNop())
		_, err := uc.AppendMessage(ctx, alice, conversation.AppendMessageInput{ConversationID: uuid.NewString(), Role: "system"})
		require.ErrorIs(t, err, conversation.ErrInvalidRole)
	})

	t.Run("MalformedConversationID", func(t *testing.T) {
		uc := usecase.New(&memRepo{}, log.NewNop())
		_, err := uc.ListMessages(ctx, alice, conversation.ListMessagesInput{ConversationID: "not-a-uuid"})
		require.ErrorIs(t, err, conversation.ErrNotFound)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		uc := usecase.New(&memRepo{failAll: true}, log.NewNop())
		_, err := uc.Create(ctx, alice)
		require.ErrorIs(t, err, repo.ErrFailedToInsertConversation)
	})
}
