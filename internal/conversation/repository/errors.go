package repository

import "errors"

var (
	ErrFailedToInsertConversation = errors.New("failed to insert conversation")
	ErrFailedToGetConversation    = errors.New("failed to get conversation")
	ErrFailedToListConversations  = errors.New("failed to list conversations")
	ErrFailedToInsertMessage      = errors.New("failed to insert message")
	ErrFailedToListMessages       = errors.New("failed to list messages")
)
