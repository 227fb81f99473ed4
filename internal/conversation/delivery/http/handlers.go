package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/conversation"
	"todo-assistant/pkg/response"
)

// List godoc
// @Summary     List conversations
// @Tags        Conversations
// @Produce     json
// @Param       X-User-ID header string true  "Caller id"
// @Param       page      query  int    false "1-based page"
// @Param       limit     query  int    false "Page size"
// @Success     200 {object} listConversationsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/conversations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ListRecent(ctx, sc, req.Page, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "conversation.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListConversationsResp(out))
}

// Messages godoc
// @Summary     List messages of a conversation
// @Description Newest first.
// @Tags        Conversations
// @Produce     json
// @Param       X-User-ID header string true  "Caller id"
// @Param       id        path   string true  "Conversation ID"
// @Param       page      query  int    false "1-based page"
// @Param       limit     query  int    false "Page size"
// @Success     200 {object} listMessagesResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/{id}/messages [GET]
func (h *handler) Messages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ListMessages(ctx, sc, conversation.ListMessagesInput{
		ConversationID: c.Param("id"),
		Page:           req.Page,
		Limit:          req.Limit,
	})
	if err != nil {
		h.l.Warnf(ctx, "conversation.http.Messages: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListMessagesResp(out))
}
