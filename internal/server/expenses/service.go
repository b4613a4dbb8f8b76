package expenses

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmarques/despesas/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add records an expense for the given owner. The owner id always comes from
// the verified token identity, never from the request body.
func (s *Service) Add(ctx context.Context, ownerID int64, title string, amount float64, category, date string) (*Expense, error) {

	title = strings.TrimSpace(title)
	date = strings.TrimSpace(date)
	if title == "" || date == "" {
		return nil, fmt.Errorf("%w: title and date are required", common.ErrorValidation)
	}

	expense := &Expense{
		OwnerID:  ownerID,
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
	}

	expense, err := s.repo.Create(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("error creating expense: %w", err)
	}

	return expense, nil
}

// List returns the owner's expenses in insertion order.
func (s *Service) List(ctx context.Context, ownerID int64) ([]Expense, error) {
	result, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}
	return result, nil
}

// Delete removes one of the owner's expenses. Deleting an expense that does
// not exist or belongs to someone else reports common.ErrorNotFound either
// way, so callers cannot probe other users' ids.
func (s *Service) Delete(ctx context.Context, ownerID, expenseID int64) error {
	return s.repo.Delete(ctx, ownerID, expenseID)
}
