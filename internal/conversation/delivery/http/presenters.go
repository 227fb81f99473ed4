package http

import (
	"todo-assistant/internal/conversation"
	"todo-assistant/pkg/response"
)

type pageReq struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type conversationResp struct {
	ID        string            `json:"id"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listConversationsResp struct {
	Conversations []conversationResp `json:"conversations"`
	Total         int                `json:"total"`
	Page          int                `json:"page"`
	Limit         int                `json:"limit"`
}

func (h *handler) newListConversationsResp(out conversation.ListConversationsOutput) listConversationsResp {
	items := make([]conversationResp, len(out.Conversations))
	for i, c := range out.Conversations {
		items[i] = conversationResp{ID: c.ID, CreatedAt: response.DateTime(c.CreatedAt)}
	}
	return listConversationsResp{
		Conversations: items,
		Total:         out.Total,
		Page:          out.Page,
		Limit:         out.Limit,
	}
}

type messageResp struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Seq       int64             `json:"seq"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listMessagesResp struct {
	Messages []messageResp `json:"messages"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	Limit    int           `json:"limit"`
}

func (h *handler) newListMessagesResp(out conversation.ListMessagesOutput) listMessagesResp {
	items := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		items[i] = messageResp{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Seq:       m.Seq,
			CreatedAt: response.DateTime(m.CreatedAt),
		}
	}
	return listMessagesResp{
		Messages: items,
		Total:    out.Total,
		Page:     out.Page,
		Limit:    out.Limit,
	}
}
