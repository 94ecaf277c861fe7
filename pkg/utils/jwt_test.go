package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	return token
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, TokenExpired(signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})))
	assert.True(t, TokenExpired(signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})))

	// no exp claim: defer to the upstream's judgement
	assert.False(t, TokenExpired(signedToken(t, jwt.MapClaims{"sub": "u1"})))

	assert.True(t, TokenExpired("not-a-jwt"))
}
