package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert todo")
	ErrFailedToGet    = errors.New("failed to get todo")
	ErrFailedToList   = errors.New("failed to list todos")
	ErrFailedToUpdate = errors.New("failed to update todo")
	ErrFailedToDelete = errors.New("failed to delete todo")
)
