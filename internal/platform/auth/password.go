// Package auth provides credential hashing and signed session tokens for
// staff accounts, plus the echo middleware that guards the API surface.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the hashing cost used when no cost is configured.
const DefaultBcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt. A cost of 0 selects
// DefaultBcryptCost. The plaintext is never stored or logged anywhere.
func HashPassword(plain string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
