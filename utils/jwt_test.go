package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpiry(t *testing.T) {
	token := signedToken(t, time.Hour)
	exp, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, TokenExpired(signedToken(t, time.Hour)))
	assert.True(t, TokenExpired(signedToken(t, -time.Minute)))
	assert.True(t, TokenExpired("not-a-token"))
}

func TestTokenNeedsRefresh(t *testing.T) {
	token := signedToken(t, 90*time.Second)
	assert.True(t, TokenNeedsRefresh(token, 2*time.Minute))
	assert.False(t, TokenNeedsRefresh(token, 30*time.Second))
	assert.True(t, TokenNeedsRefresh("garbage", time.Minute))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$29.00", FormatAmount(2900, "USD"))
	assert.Equal(t, "€10.50", FormatAmount(1050, "EUR"))
	assert.Equal(t, "CAD 5.00", FormatAmount(500, "cad"))
}
