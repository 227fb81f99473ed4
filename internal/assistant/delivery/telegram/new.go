package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/assistant"
	pkgLog "todo-assistant/pkg/log"
)

// Sender delivers replies to a Telegram chat. *pkg/telegram.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	uc     assistant.UseCase
	bot    Sender
	secret string
}

// New creates a new Telegram delivery handler. When secret is set, updates
// without the matching secret token header are rejected.
func New(l pkgLog.Logger, uc assistant.UseCase, bot Sender, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}
