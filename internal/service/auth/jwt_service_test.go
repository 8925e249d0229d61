package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret})
	assert.Error(t, err, "zero lifetime is rejected")

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 30 * 24 * 60})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	lifetime := 30 * 24 * time.Hour
	svc := newHMACJWTService(testSecret, lifetime, fixedClock(fixedTime))
	userID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject, "subject is the user id")
	assert.Equal(t, accessTokenType, claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(lifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)

	other, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEqual(t, token, other, "token ids are unique")
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	issuer := newHMACJWTService(testSecret, time.Hour, fixedClock(fixedTime))
	valid, err := issuer.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, key any, claims tokenClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	registered := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(fixedTime),
		ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
	}

	tests := []struct {
		name    string
		now     time.Time
		token   string
		wantErr error
	}{
		{name: "valid token", now: fixedTime, token: valid},
		{name: "within clock skew after expiry", now: fixedTime.Add(time.Hour + time.Minute), token: valid},
		{name: "expired token", now: fixedTime.Add(time.Hour + 3*time.Minute), token: valid, wantErr: ErrExpiredToken},
		{name: "malformed token", now: fixedTime, token: "not.a.jwt", wantErr: ErrInvalidToken},
		{name: "empty token", now: fixedTime, token: "", wantErr: ErrInvalidToken},
		{
			name:    "wrong secret",
			now:     fixedTime,
			token:   sign(jwt.SigningMethodHS256, []byte("wrong-secret-that-is-long-enough-for-testing"), tokenClaims{UserID: userID, TokenType: accessTokenType, RegisteredClaims: registered}),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "other hmac algorithm",
			now:     fixedTime,
			token:   sign(jwt.SigningMethodHS512, []byte(testSecret), tokenClaims{UserID: userID, TokenType: accessTokenType, RegisteredClaims: registered}),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "wrong token type",
			now:     fixedTime,
			token:   sign(jwt.SigningMethodHS256, []byte(testSecret), tokenClaims{UserID: userID, TokenType: "refresh", RegisteredClaims: registered}),
			wantErr: ErrWrongTokenType,
		},
		{
			name:    "missing expiry",
			now:     fixedTime,
			token:   sign(jwt.SigningMethodHS256, []byte(testSecret), tokenClaims{UserID: userID, TokenType: accessTokenType, RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()}}),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "subject does not match user id",
			now:     fixedTime,
			token:   sign(jwt.SigningMethodHS256, []byte(testSecret), tokenClaims{UserID: uuid.New(), TokenType: accessTokenType, RegisteredClaims: registered}),
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newHMACJWTService(testSecret, time.Hour, fixedClock(tt.now))
			claims, err := svc.ValidateToken(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}
