package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	v, err := NewBcryptVerifier(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, v.Compare(hash, "secret123"))
	assert.ErrorIs(t, v.Compare(hash, "wrong"), bcrypt.ErrMismatchedHashAndPassword)
	assert.NotPanics(t, func() { v.CompareDummy("anything") })
}

func TestNewBcryptVerifierRejectsInvalidCost(t *testing.T) {
	t.Parallel()

	_, err := NewBcryptVerifier(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestHashPasswordCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123", 5)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	other, err := HashPassword("secret123", 5)
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes are salted")
}
