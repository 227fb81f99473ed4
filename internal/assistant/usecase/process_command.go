package usecase

import (
	"context"
	"fmt"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/model"
	"todo-assistant/internal/router"
)

// ProcessCommand runs one turn: log the input, classify, handle, log the reply.
// Nothing is rolled back when a later step fails.
func (uc *implUseCase) ProcessCommand(ctx context.Context, sc model.Scope, input assistant.ProcessCommandInput) (assistant.ProcessCommandOutput, error) {
	if sc.UserID == "" {
		return assistant.ProcessCommandOutput{}, assistant.ErrMissingScope
	}

	conv, err := uc.activeConversation(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ProcessCommand: %v", err)
		return assistant.ProcessCommandOutput{}, err
	}

	userMsg, err := uc.appendMessage(ctx, sc, conv.ID, conversation.RoleUser, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ProcessCommand: %v", err)
		return assistant.ProcessCommandOutput{}, err
	}

	route := router.Route(input.Text)
	uc.l.Infof(ctx, "assistant.usecase.ProcessCommand: intent=%s keyword=%q", route.Intent, route.Keyword)

	reply, err := uc.dispatch(ctx, sc, route.Intent, input.Text, conv.ID, userMsg.ID)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.ProcessCommand: %s handler failed (%s): %v", route.Intent, kindOf(err), err)
		reply = renderError(route.Intent, err)
	}

	if _, err := uc.appendMessage(ctx, sc, conv.ID, conversation.RoleAssistant, reply); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.ProcessCommand: %v", err)
		return assistant.ProcessCommandOutput{}, err
	}

	return assistant.ProcessCommandOutput{
		Intent:         string(route.Intent),
		Response:       reply,
		ConversationID: conv.ID,
	}, nil
}

func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, intent router.Intent, text, convID, userMsgID string) (string, error) {
	switch intent {
	case router.IntentAdd:
		return uc.handleAdd(ctx, sc, text)
	case router.IntentList:
		return uc.handleList(ctx, sc, text)
	case router.IntentComplete:
		return uc.handleComplete(ctx, sc)
	case router.IntentDelete:
		return uc.handleDelete(ctx, sc)
	case router.IntentUpdate:
		return uc.handleUpdate(ctx, sc, text)
	default:
		return uc.handleGeneralQuery(ctx, sc, text, convID, userMsgID)
	}
}

// renderError turns a handler failure into the reply the user sees.
func renderError(intent router.Intent, err error) string {
	switch kindOf(err) {
	case kindNotFound, kindForbidden:
		switch intent {
		case router.IntentComplete:
			return msgCompleteRefused
		case router.IntentUpdate:
			return msgUpdateRefused
		}
	}
	return fmt.Sprintf(msgApology, err.Error())
}
