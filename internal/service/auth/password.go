package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier compares plaintext passwords against stored hashes.
type PasswordVerifier interface {
	// Compare returns nil when password matches hashedPassword.
	Compare(hashedPassword, password string) error

	// CompareDummy performs a full comparison against a fixed hash and
	// discards the result. Callers use it when there is no stored hash, so
	// that a missing account costs the same time as a wrong password.
	CompareDummy(password string)
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct {
	dummyHash []byte
}

// NewBcryptVerifier creates a BcryptVerifier whose dummy hash uses cost,
// matching the cost of stored hashes.
func NewBcryptVerifier(cost int) (*BcryptVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to create dummy hash: %w", err)
	}
	return &BcryptVerifier{dummyHash: hash}, nil
}

// Compare implements PasswordVerifier.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// CompareDummy implements PasswordVerifier.
func (v *BcryptVerifier) CompareDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(v.dummyHash, []byte(password))
}

// HashPassword hashes password at cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
