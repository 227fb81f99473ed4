package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
)

// RegisterRoutes maps /conversations endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	convs := rg.Group("/conversations", mw.Auth(), mw.RateLimit())
	{
		convs.GET("", h.List)
		convs.GET("/:id/messages", h.Messages)
	}
}
