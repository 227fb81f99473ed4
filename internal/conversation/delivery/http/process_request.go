package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
	"todo-assistant/internal/model"
	pkgErrors "todo-assistant/pkg/errors"
)

func (h *handler) processPageReq(c *gin.Context) (model.Scope, pageReq, error) {
	var req pageReq
	sc, ok := middleware.GetScopeFromContext(c.Request.Context())
	if !ok {
		return sc, req, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}
