package users

import "time"

// User is a registered account. PasswordHash holds the bcrypt hash, never
// the plaintext.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
