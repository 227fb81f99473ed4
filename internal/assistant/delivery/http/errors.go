package http

import (
	"errors"

	"todo-assistant/internal/assistant"
	pkgErrors "todo-assistant/pkg/errors"
)

// mapError maps the few errors ProcessCommand and Chat return. Handler
// failures never reach here; they are part of the reply text.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrMissingScope):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
