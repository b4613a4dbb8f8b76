package expenses

import "context"

// Repository persists expenses. Every query and mutation is scoped by the
// owner id; there is no way to reach another user's rows through it.
type Repository interface {
	Create(ctx context.Context, expense *Expense) (*Expense, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Expense, error)
	// Delete removes the expense only when it belongs to ownerID and
	// returns common.ErrorNotFound otherwise.
	Delete(ctx context.Context, ownerID, expenseID int64) error
}
