package auth

import (
	"testing"

	"stock-tracker-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:         "0123456789abcdef0123456789abcdef",
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}
}

func TestEnvVerifier(t *testing.T) {
	cfg := testConfig(t, "correct horse")
	v := NewEnvVerifier(cfg)

	identity, ok := v.Verify("admin", "correct horse")
	require.True(t, ok)
	assert.Equal(t, "admin", identity.Username)

	_, ok = v.Verify("admin", "wrong password")
	assert.False(t, ok)

	_, ok = v.Verify("someone-else", "correct horse")
	assert.False(t, ok)

	_, ok = v.Verify("", "")
	assert.False(t, ok)
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	cfg := testConfig(t, "pw")

	tokenStr, err := GenerateToken(cfg.JWTSecret, &Identity{Username: "admin"})
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*JWTCustomClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims.Username)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	cfg := testConfig(t, "pw")

	tokenStr, err := GenerateToken(cfg.JWTSecret, &Identity{Username: "admin"})
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("another-secret-another-secret-xx"), nil
	})
	require.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}
