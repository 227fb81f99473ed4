package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-assistant/internal/model"
	"todo-assistant/pkg/log"
	"todo-assistant/pkg/response"
)

const (
	HeaderUserID      = "X-User-ID"
	HeaderUsername    = "X-Username"
	HeaderInternalKey = "X-Internal-Key"
	HeaderRequestID   = "X-Request-ID"
)

// Auth resolves the caller from trusted headers set by the gateway in front
// of this service. When an internal key is configured the request must carry it.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if mw.internalKey != "" {
			key := c.GetHeader(HeaderInternalKey)
			if subtle.ConstantTimeCompare([]byte(key), []byte(mw.internalKey)) != 1 {
				mw.l.Warnf(ctx, "middleware.Auth: invalid internal key from %s", c.ClientIP())
				response.Unauthorized(c)
				return
			}
		}

		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		sc := model.Scope{
			UserID:   userID,
			Username: c.GetHeader(HeaderUsername),
		}
		c.Request = c.Request.WithContext(SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// RequestID tags the request context with an id for log correlation.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
