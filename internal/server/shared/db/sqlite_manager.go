package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarques/despesas/internal/server/expenses"
	"github.com/dmarques/despesas/internal/server/migrations"
	"github.com/dmarques/despesas/internal/server/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type SQLiteRepositoryManager struct {
	db       *sql.DB
	users    users.Repository
	expenses expenses.Repository
}

func (m *SQLiteRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *SQLiteRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SQLiteRepositoryManager) Expenses() expenses.Repository {
	return m.expenses
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.SQLite)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewSQLiteRepositoryManager(path string) (RepositoryManager, error) {

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// A single connection sidesteps SQLITE_BUSY and keeps in-memory
	// databases on one handle.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, fmt.Errorf("db setup error: %w", err)
	}

	userRepo, err := users.NewSQLiteRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	expenseRepo, err := expenses.NewSQLiteRepository(db)
	if err != nil {
		return nil, fmt.Errorf("expense repo creation error: %w", err)
	}

	m := &SQLiteRepositoryManager{
		db:       db,
		users:    userRepo,
		expenses: expenseRepo,
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
