package conversation

import "errors"

var (
	ErrNotFound     = errors.New("conversation not found")
	ErrInvalidRole  = errors.New("invalid message role")
	ErrMissingScope = errors.New("user scope is required")
)
