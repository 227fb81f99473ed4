package usecase

import (
	"todo-assistant/internal/conversation/repository"
	"todo-assistant/pkg/log"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new conversation UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
