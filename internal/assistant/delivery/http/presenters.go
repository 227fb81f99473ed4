package http

import "todo-assistant/internal/assistant"

type messageReq struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type commandResp struct {
	Intent         string `json:"intent"`
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

func (h *handler) newCommandResp(out assistant.ProcessCommandOutput) commandResp {
	return commandResp{
		Intent:         out.Intent,
		Response:       out.Response,
		ConversationID: out.ConversationID,
	}
}

type chatResp struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	return chatResp{
		Response:       out.Response,
		ConversationID: out.ConversationID,
	}
}
