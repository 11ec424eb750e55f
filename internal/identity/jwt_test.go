package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestVerifyValidToken(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub":   "user-123",
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	id, err := NewTokenVerifier(testSecret).Verify(context.Background(), tok)
	require.NoError(t, err)
	require.Equal(t, "user-123", id.UserID)
	require.Equal(t, "ana@example.com", id.Email)
}

func TestVerifyWrongSecret(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, "other-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewTokenVerifier(testSecret).Verify(context.Background(), tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyUnexpectedSigningMethod(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS512, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewTokenVerifier(testSecret).Verify(context.Background(), tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := NewTokenVerifier(testSecret).Verify(context.Background(), tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingSubject(t *testing.T) {
	tok := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewTokenVerifier(testSecret).Verify(context.Background(), tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}
