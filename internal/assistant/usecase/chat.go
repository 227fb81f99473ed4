package usecase

import (
	"context"
	"fmt"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/model"
)

// Chat keeps the same transcript bookkeeping as ProcessCommand but always
// asks the AI model.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	if sc.UserID == "" {
		return assistant.ChatOutput{}, assistant.ErrMissingScope
	}

	conv, err := uc.activeConversation(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Chat: %v", err)
		return assistant.ChatOutput{}, err
	}

	userMsg, err := uc.appendMessage(ctx, sc, conv.ID, conversation.RoleUser, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Chat: %v", err)
		return assistant.ChatOutput{}, err
	}

	reply, err := uc.handleGeneralQuery(ctx, sc, input.Text, conv.ID, userMsg.ID)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.Chat: %v", err)
		reply = fmt.Sprintf(msgApology, err.Error())
	}

	if _, err := uc.appendMessage(ctx, sc, conv.ID, conversation.RoleAssistant, reply); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Chat: %v", err)
		return assistant.ChatOutput{}, err
	}

	return assistant.ChatOutput{
		Response:       reply,
		ConversationID: conv.ID,
	}, nil
}
