// Package db wires a relational backend to the domain repositories. The DSN
// decides the engine: "postgres://" URLs go to PostgreSQL via pgx, anything
// else is treated as a SQLite database path.
package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmarques/despesas/internal/server/expenses"
	"github.com/dmarques/despesas/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Expenses() expenses.Repository
}

// NewRepositoryManager opens the backend selected by the DSN and runs its
// migrations.
func NewRepositoryManager(dsn string) (RepositoryManager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresRepositoryManager(dsn)
	}
	return NewSQLiteRepositoryManager(dsn)
}
