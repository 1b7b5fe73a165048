// Package security implements password hashing and verification for user
// credentials. Hashes are salted bcrypt; the plaintext is never persisted.
package security

import (
	"errors"
	"fmt"

	"github.com/avdoshkin/helpnet/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the plaintext with bcrypt at the default cost.
// Each call salts independently, so two hashes of the same password differ
// while both still verify.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A mismatch is a normal (false, nil) result. A stored value that is not a
// valid bcrypt hash yields common.ErrMalformedHash, which indicates data
// corruption rather than a bad credential.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", common.ErrMalformedHash, err)
}
