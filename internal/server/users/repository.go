package users

import (
	"context"
)

// Repository persists user accounts. Create returns common.ErrorEmailTaken
// when the email is already registered; GetByEmail returns
// common.ErrorNotFound when no account matches. Email comparison is
// case-sensitive, as stored.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
