package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmarques/despesas/internal/common"
	"github.com/dmarques/despesas/internal/dbx"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	return &SQLiteRepository{db: db}, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func (r *SQLiteRepository) Create(ctx context.Context, user *User) (*User, error) {

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		var existing int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM users WHERE email = ?`, user.Email).Scan(&existing)
		if err == nil {
			return common.ErrorEmailTaken
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("error performing sql request: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)`,
			user.Name, user.Email, user.PasswordHash)
		if err != nil {
			if isUniqueViolation(err) {
				return common.ErrorEmailTaken
			}
			return fmt.Errorf("error performing sql request: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("error reading inserted id: %w", err)
		}
		user.ID = id

		return tx.QueryRowContext(ctx,
			`SELECT created_at FROM users WHERE id = ?`, id).Scan(&user.CreatedAt)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}
