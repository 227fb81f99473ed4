package usecase

import (
	"context"
	"fmt"

	"todo-assistant/internal/conversation"
	"todo-assistant/internal/model"
	"todo-assistant/pkg/llmprovider"
)

// activeConversation returns the user's most recent conversation, creating
// one when the user has none.
func (uc *implUseCase) activeConversation(ctx context.Context, sc model.Scope) (conversation.Conversation, error) {
	out, err := uc.convUC.ListRecent(ctx, sc, 1, 1)
	if err != nil {
		return conversation.Conversation{}, fmt.Errorf("list conversations: %w", err)
	}
	if len(out.Conversations) > 0 {
		return out.Conversations[0], nil
	}

	c, err := uc.convUC.Create(ctx, sc)
	if err != nil {
		return conversation.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}
	return c, nil
}

func (uc *implUseCase) appendMessage(ctx context.Context, sc model.Scope, convID string, role conversation.Role, content string) (conversation.Message, error) {
	m, err := uc.convUC.AppendMessage(ctx, sc, conversation.AppendMessageInput{
		ConversationID: convID,
		Role:           role,
		Content:        content,
	})
	if err != nil {
		return conversation.Message{}, fmt.Errorf("append %s message: %w", role, err)
	}
	return m, nil
}

// recentHistory returns up to historyLimit messages before the current
// input, oldest first. excludeID is the just-logged user message.
func (uc *implUseCase) recentHistory(ctx context.Context, sc model.Scope, convID, excludeID string) ([]llmprovider.Message, error) {
	out, err := uc.convUC.ListMessages(ctx, sc, conversation.ListMessagesInput{
		ConversationID: convID,
		Page:           1,
		Limit:          historyLimit + 1,
	})
	if err != nil {
		return nil, err
	}

	// out.Messages is newest first.
	recent := make([]conversation.Message, 0, historyLimit)
	for _, m := range out.Messages {
		if m.ID == excludeID {
			continue
		}
		if len(recent) == historyLimit {
			break
		}
		recent = append(recent, m)
	}

	history := make([]llmprovider.Message, len(recent))
	for i, m := range recent {
		history[len(recent)-1-i] = llmprovider.Message{Role: string(m.Role), Content: m.Content}
	}
	return history, nil
}
