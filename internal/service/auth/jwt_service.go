package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService issues and validates bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed access token whose subject is userID.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies the signature, expiry and type of tokenString
	// and returns its claims. Returns ErrExpiredToken, ErrWrongTokenType or
	// ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a token.
type Claims struct {
	UserID    uuid.UUID
	TokenType string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
