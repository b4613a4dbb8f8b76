package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmarques/despesas/internal/common"
	"github.com/dmarques/despesas/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

// Create inserts a new user. The duplicate pre-check and the insert run in
// one transaction so the connection is released on every exit path; the
// UNIQUE constraint on email stays authoritative under concurrent inserts.
func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		var existing int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM users WHERE email = $1`, user.Email).Scan(&existing)
		if err == nil {
			return common.ErrorEmailTaken
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("error performing sql request: %w", err)
		}

		query :=
			`INSERT INTO users (name, email, password_hash)
			 VALUES ($1, $2, $3)
			 RETURNING id, created_at
			 `

		err = tx.QueryRowContext(ctx, query,
			user.Name, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return common.ErrorEmailTaken
			}
			return fmt.Errorf("error performing sql request: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, name, email, password_hash, created_at FROM users
		 WHERE email = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}
