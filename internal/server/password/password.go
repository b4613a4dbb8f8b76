// Package password wraps bcrypt hashing of user passwords. Each hash carries
// its own random salt, so the same plaintext never hashes to the same value
// twice.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of the plaintext password.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed or
// empty hash yields false, never an error.
func Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
