package expenses

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarques/despesas/internal/common"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, expense *Expense) (*Expense, error) {

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (owner_id, title, amount, category, date) VALUES (?, ?, ?, ?, ?)`,
		expense.OwnerID, expense.Title, expense.Amount, expense.Category, expense.Date)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("error reading inserted id: %w", err)
	}
	expense.ID = id

	return expense, nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]Expense, error) {

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, title, amount, category, date FROM expenses
		 WHERE owner_id = ?
		 ORDER BY id`, ownerID)
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

func (r *SQLiteRepository) Delete(ctx context.Context, ownerID, expenseID int64) error {

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE id = ? AND owner_id = ?`, expenseID, ownerID)
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
