package httpserver

import (
	"context"

	"todo-assistant/internal/assistant"
	assistantHTTP "todo-assistant/internal/assistant/delivery/http"
	assistantTelegram "todo-assistant/internal/assistant/delivery/telegram"
	assistantUC "todo-assistant/internal/assistant/usecase"
	"todo-assistant/internal/conversation"
	conversationHTTP "todo-assistant/internal/conversation/delivery/http"
	conversationRepo "todo-assistant/internal/conversation/repository/postgre"
	conversationUC "todo-assistant/internal/conversation/usecase"
	"todo-assistant/internal/middleware"
	"todo-assistant/internal/todo"
	todoHTTP "todo-assistant/internal/todo/delivery/http"
	todoRepo "todo-assistant/internal/todo/repository/postgre"
	todoUC "todo-assistant/internal/todo/usecase"

	"github.com/gin-gonic/gin"
)

// Each domain follows the same steps:
//  1. Repository:   repo := xRepo.New(srv.postgresDB, srv.l)
//  2. UseCase:      uc := xUC.New(repo, srv.l)
//  3. HTTP Handler: h := xHTTP.New(srv.l, uc)
//  4. Routes:       xHTTP.RegisterRoutes(api, h, mw)

// setupTodoDomain registers /api/v1/todos.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) todo.UseCase {
	repo := todoRepo.New(srv.postgresDB, srv.l)
	uc := todoUC.New(repo, srv.l)
	h := todoHTTP.New(srv.l, uc)
	todoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return uc
}

// setupConversationDomain registers /api/v1/conversations.
func (srv HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) conversation.UseCase {
	repo := conversationRepo.New(srv.postgresDB, srv.l)
	uc := conversationUC.New(repo, srv.l)
	h := conversationHTTP.New(srv.l, uc)
	conversationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Conversation domain registered")
	return uc
}

// setupAssistantDomain registers /api/v1/assistant and, when a bot is
// configured, the Telegram webhook.
func (srv HTTPServer) setupAssistantDomain(
	ctx context.Context,
	api *gin.RouterGroup,
	mw middleware.Middleware,
	todos todo.UseCase,
	conversations conversation.UseCase,
) assistant.UseCase {
	uc := assistantUC.New(srv.l, todos, conversations, srv.llm)
	h := assistantHTTP.New(srv.l, uc)
	assistantHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Assistant domain registered with provider %s (%s)", srv.llm.Name(), srv.llm.Model())

	if srv.telegramBot == nil {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
		return uc
	}

	tg := assistantTelegram.New(srv.l, uc, srv.telegramBot, srv.telegramSecret)
	assistantTelegram.RegisterRoutes(srv.gin, tg)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")

	return uc
}
