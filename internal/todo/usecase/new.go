package usecase

import (
	"todo-assistant/internal/todo/repository"
	"todo-assistant/pkg/log"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new todo UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
