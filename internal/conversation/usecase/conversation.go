package usecase

import (
	"context"

	"github.com/google/uuid"

	"todo-assistant/internal/conversation"
	repo "todo-assistant/internal/conversation/repository"
	"todo-assistant/internal/model"
)

func (uc *implUseCase) ListRecent(ctx context.Context, sc model.Scope, page, limit int) (conversation.ListConversationsOutput, error) {
	if sc.UserID == "" {
		return conversation.ListConversationsOutput{}, conversation.ErrMissingScope
	}
	page, limit = normalizePage(page, limit)

	convs, total, err := uc.repo.ListConversations(ctx, repo.ListConversationsOptions{
		UserID: sc.UserID,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRecent ListConversations: %v", err)
		return conversation.ListConversationsOutput{}, err
	}

	return conversation.ListConversationsOutput{
		Conversations: convs,
		Total:         total,
		Page:          page,
		Limit:         limit,
	}, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope) (conversation.Conversation, error) {
	if sc.UserID == "" {
		return conversation.Conversation{}, conversation.ErrMissingScope
	}

	c, err := uc.repo.CreateConversation(ctx, repo.CreateConversationOptions{
		ID:     uuid.NewString(),
		UserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateConversation: %v", err)
		return conversation.Conversation{}, err
	}

	uc.l.Infof(ctx, "uc.Create: conversation %s for user %s", c.ID, sc.UserID)
	return c, nil
}
