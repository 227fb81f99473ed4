package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
	"todo-assistant/internal/model"
	pkgErrors "todo-assistant/pkg/errors"
)

func (h *handler) processMessageReq(c *gin.Context) (model.Scope, messageReq, error) {
	var req messageReq
	sc, ok := middleware.GetScopeFromContext(c.Request.Context())
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}
