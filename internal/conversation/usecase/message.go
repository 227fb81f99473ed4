package usecase

import (
	"context"

	"github.com/google/uuid"

	"todo-assistant/internal/conversation"
	repo "todo-assistant/internal/conversation/repository"
	"todo-assistant/internal/model"
)

func (uc *implUseCase) AppendMessage(ctx context.Context, sc model.Scope, input conversation.AppendMessageInput) (conversation.Message, error) {
	if sc.UserID == "" {
		return conversation.Message{}, conversation.ErrMissingScope
	}
	if !input.Role.Valid() {
		return conversation.Message{}, conversation.ErrInvalidRole
	}
	if !isValidID(input.ConversationID) {
		return conversation.Message{}, conversation.ErrNotFound
	}

	m, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		ID:             uuid.NewString(),
		ConversationID: input.ConversationID,
		UserID:         sc.UserID,
		Role:           input.Role,
		Content:        input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AppendMessage CreateMessage: %v", err)
		return conversation.Message{}, err
	}
	if m.ID == "" {
		return conversation.Message{}, conversation.ErrNotFound
	}
	return m, nil
}

func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope, input conversation.ListMessagesInput) (conversation.ListMessagesOutput, error) {
	if sc.UserID == "" {
		return conversation.ListMessagesOutput{}, conversation.ErrMissingScope
	}
	if !isValidID(input.ConversationID) {
		return conversation.ListMessagesOutput{}, conversation.ErrNotFound
	}

	c, err := uc.repo.GetOneConversation(ctx, repo.GetOneConversationOptions{
		ID:     input.ConversationID,
		UserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMessages GetOneConversation: %v", err)
		return conversation.ListMessagesOutput{}, err
	}
	if c.ID == "" {
		return conversation.ListMessagesOutput{}, conversation.ErrNotFound
	}

	page, limit := normalizePage(input.Page, input.Limit)
	msgs, total, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{
		ConversationID: c.ID,
		Limit:          limit,
		Offset:         (page - 1) * limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMessages ListMessages: %v", err)
		return conversation.ListMessagesOutput{}, err
	}

	return conversation.ListMessagesOutput{
		Messages: msgs,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}
