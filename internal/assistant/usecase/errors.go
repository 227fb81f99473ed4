package usecase

import (
	"errors"

	"todo-assistant/internal/todo"
)

// errKind classifies a handler failure for rendering.
type errKind string

const (
	kindStore     errKind = "store"
	kindAI        errKind = "ai"
	kindNotFound  errKind = "not_found"
	kindForbidden errKind = "forbidden"
)

// handlerError is what intent handlers return instead of a reply.
type handlerError struct {
	kind errKind
	err  error
}

func (e *handlerError) Error() string {
	return e.err.Error()
}

func (e *handlerError) Unwrap() error {
	return e.err
}

// storeError tags a todo store failure, picking out not found and forbidden.
func storeError(err error) error {
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return &handlerError{kind: kindNotFound, err: err}
	case errors.Is(err, todo.ErrForbidden):
		return &handlerError{kind: kindForbidden, err: err}
	default:
		return &handlerError{kind: kindStore, err: err}
	}
}

func aiError(err error) error {
	return &handlerError{kind: kindAI, err: err}
}

// kindOf returns kindStore for errors no handler tagged.
func kindOf(err error) errKind {
	var he *handlerError
	if errors.As(err, &he) {
		return he.kind
	}
	return kindStore
}
