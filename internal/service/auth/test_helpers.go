package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/stretchr/testify/require"
)

// DefaultTestAuthConfig returns an auth configuration suitable for tests.
func DefaultTestAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
		PasswordMinLength:    6,
	}
}

// RequireTestJWTService creates a JWT service with DefaultTestAuthConfig.
func RequireTestJWTService(t *testing.T) JWTService {
	t.Helper()
	svc, err := NewJWTService(DefaultTestAuthConfig())
	require.NoError(t, err, "failed to create test JWT service")
	return svc
}

// AuthHeaderForTesting returns an Authorization header value carrying a
// token for userID issued by svc.
func AuthHeaderForTesting(t *testing.T, svc JWTService, userID uuid.UUID) string {
	t.Helper()
	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err, "failed to generate token")
	return "Bearer " + token
}
