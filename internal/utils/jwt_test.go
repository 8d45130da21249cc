package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return signed
}

func TestDecodeIdentity_UserIDClaim(t *testing.T) {
	signed := signTestToken(t, jwt.MapClaims{"userId": "u-123", "name": "Alice"})

	identity, err := DecodeIdentity(signed)

	require.NoError(t, err)
	assert.Equal(t, "u-123", identity.UserID)
	assert.Equal(t, "Alice", identity.Name)
}

func TestDecodeIdentity_FallsBackToIDClaim(t *testing.T) {
	signed := signTestToken(t, jwt.MapClaims{"id": "u-456", "name": "Bob"})

	identity, err := DecodeIdentity(signed)

	require.NoError(t, err)
	assert.Equal(t, "u-456", identity.UserID)
}

func TestDecodeIdentity_MissingNameClaim(t *testing.T) {
	signed := signTestToken(t, jwt.MapClaims{"userId": "u-789"})

	identity, err := DecodeIdentity(signed)

	require.NoError(t, err)
	assert.Empty(t, identity.Name)
	assert.Equal(t, "User", identity.DisplayName())
}

func TestDecodeIdentity_MissingUserID(t *testing.T) {
	signed := signTestToken(t, jwt.MapClaims{"name": "Ghost"})

	_, err := DecodeIdentity(signed)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeIdentity_Garbage(t *testing.T) {
	_, err := DecodeIdentity("not-a-jwt")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
