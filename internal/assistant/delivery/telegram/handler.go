package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/model"
	pkgResponse "todo-assistant/pkg/response"
	pkgTelegram "todo-assistant/pkg/telegram"
)

// HandleWebhook acknowledges the update at once and processes it on a
// detached goroutine; Telegram retries updates that are not answered quickly.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "telegram handler: bad secret token from %s", c.ClientIP())
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil || update.Message.From == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.WithoutCancel(ctx)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs one Telegram message through the assistant and sends the reply.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case cmdStart:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgStart, "Markdown")
	case cmdHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgHelp, "Markdown")
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	out, err := h.uc.ProcessCommand(ctx, sc, assistant.ProcessCommandInput{Text: msg.Text})
	if err != nil {
		return fmt.Errorf("ProcessCommand: %w", err)
	}

	h.l.Infof(ctx, "telegram handler: chat %d intent=%s", msg.Chat.ID, out.Intent)
	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Response)
}
