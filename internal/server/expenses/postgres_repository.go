package expenses

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarques/despesas/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, expense *Expense) (*Expense, error) {

	query :=
		`INSERT INTO expenses (owner_id, title, amount, category, date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		expense.OwnerID, expense.Title, expense.Amount, expense.Category, expense.Date).
		Scan(&expense.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return expense, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]Expense, error) {

	query :=
		`SELECT id, owner_id, title, amount, category, date FROM expenses
		 WHERE owner_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []Expense{}
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Amount, &e.Category, &e.Date); err != nil {
			return nil, fmt.Errorf("error scanning expense: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, expenseID int64) error {

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE id = $1 AND owner_id = $2`, expenseID, ownerID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
