package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
)

// RegisterRoutes maps /assistant endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("/assistant", mw.Auth(), mw.RateLimit())
	{
		a.POST("/commands", h.Command)
		a.POST("/chat", h.Chat)
	}
}
