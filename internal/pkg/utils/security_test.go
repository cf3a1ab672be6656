package utils

import (
	"medifax-client/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-key"))
	require.NoError(t, err)
	return token
}

func TestParseSessionToken(t *testing.T) {
	t.Run("Reads Expiry And Username", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		token := signTestToken(t, jwt.MapClaims{"exp": exp.Unix(), "username": "jane@example.com"})

		info, err := ParseSessionToken(token)

		require.NoError(t, err)
		assert.Equal(t, token, info.Token)
		assert.Equal(t, "jane@example.com", info.Subject)
		assert.True(t, exp.Equal(info.ExpiresAt), "expiry should come from the exp claim")
		assert.False(t, info.Expired(time.Now()))
	})

	t.Run("Prefers Sub Claim", func(t *testing.T) {
		token := signTestToken(t, jwt.MapClaims{"sub": "42", "username": "jane@example.com"})

		info, err := ParseSessionToken(token)

		require.NoError(t, err)
		assert.Equal(t, "42", info.Subject)
		assert.True(t, info.ExpiresAt.IsZero())
	})

	t.Run("Expired Token Is Still Parsed", func(t *testing.T) {
		token := signTestToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})

		info, err := ParseSessionToken(token)

		require.NoError(t, err)
		assert.True(t, info.Expired(time.Now()))
	})

	t.Run("Opaque Token", func(t *testing.T) {
		info, err := ParseSessionToken(" opaque-token ")

		require.NoError(t, err)
		assert.Equal(t, "opaque-token", info.Token)
		assert.True(t, info.ExpiresAt.IsZero())
	})

	t.Run("Empty Token", func(t *testing.T) {
		_, err := ParseSessionToken("  ")

		assert.Equal(t, exceptions.KindAuth, exceptions.KindOf(err))
	})

	t.Run("Malformed JWT", func(t *testing.T) {
		_, err := ParseSessionToken("not.a.jwt")

		assert.Equal(t, exceptions.KindAuth, exceptions.KindOf(err))
	})
}
