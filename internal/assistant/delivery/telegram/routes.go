package telegram

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the webhook endpoint.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
