package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestTokenCarriesExpiry(t *testing.T) {
	token, err := GenerateToken(7, testSecret)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 6*24*time.Hour)
	assert.LessOrEqual(t, remaining, TokenTTL)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: 42,
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(expired, testSecret)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnsignedAlgorithm(t *testing.T) {
	claims := &Claims{UserID: 42}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(unsigned, testSecret)
	assert.Error(t, err)
}
