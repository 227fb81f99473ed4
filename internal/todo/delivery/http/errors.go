package http

import (
	"errors"
	"net/http"

	"todo-assistant/internal/todo"
	pkgErrors "todo-assistant/pkg/errors"
)

var (
	errIDRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errTodoNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "todo not found")
)

// mapError translates todo errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return errTodoNotFound
	case errors.Is(err, todo.ErrForbidden):
		return pkgErrors.ErrForbidden
	case errors.Is(err, todo.ErrMissingScope):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
