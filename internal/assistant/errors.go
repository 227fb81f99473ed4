package assistant

import "errors"

var (
	ErrMissingScope = errors.New("user scope is required")
)
