package todo

import "errors"

var (
	ErrNotFound     = errors.New("todo not found")
	ErrForbidden    = errors.New("todo belongs to another user")
	ErrMissingScope = errors.New("user scope is required")
)
