package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
)

// RegisterRoutes maps /todos endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("/todos", mw.Auth(), mw.RateLimit())
	{
		todos.POST("", h.Create)
		todos.GET("", h.List)
		todos.GET("/:id", h.Detail)
		todos.PUT("/:id", h.Update)
		todos.PATCH("/:id/toggle", h.Toggle)
		todos.DELETE("/:id", h.Delete)
	}
}
