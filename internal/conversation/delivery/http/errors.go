package http

import (
	"errors"
	"net/http"

	"todo-assistant/internal/conversation"
	pkgErrors "todo-assistant/pkg/errors"
)

var errConversationNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "conversation not found")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrNotFound):
		return errConversationNotFound
	case errors.Is(err, conversation.ErrMissingScope):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
