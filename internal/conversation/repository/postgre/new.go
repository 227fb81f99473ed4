package postgre

import (
	"database/sql"
	"fmt"

	"todo-assistant/internal/conversation/repository"
	"todo-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed conversation Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("conversation/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/postgre.%s", method)
}
