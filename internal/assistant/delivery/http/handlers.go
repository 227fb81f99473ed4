package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/assistant"
	"todo-assistant/pkg/response"
)

// Command godoc
// @Summary     Run a natural-language todo command
// @Description Classifies the message, runs the matching todo operation or
// @Description asks the AI model, and logs both turns to the active conversation.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller id"
// @Param       body      body   messageReq true "User message"
// @Success     200 {object} commandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/commands [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ProcessCommand(ctx, sc, assistant.ProcessCommandInput{Text: req.Message})
	if err != nil {
		h.l.Errorf(ctx, "assistant.http.Command: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCommandResp(out))
}

// Chat godoc
// @Summary     Chat with the AI model
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller id"
// @Param       body      body   messageReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Chat(ctx, sc, assistant.ChatInput{Text: req.Message})
	if err != nil {
		h.l.Errorf(ctx, "assistant.http.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(out))
}
