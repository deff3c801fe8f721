package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken("u1", "supervisor", true)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	got, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, Claims{UserID: "u1", Username: "supervisor", IsStaff: true}, got)
	assert.Equal(t, "access", claims["type"])
}

func TestClaimsFromContext_Rejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok, "missing token")

	_, other, err := svc.JWTAuth().Encode(map[string]interface{}{"user_id": "u1", "type": "refresh"})
	require.NoError(t, err)
	decoded, err := svc.JWTAuth().Decode(other)
	require.NoError(t, err)

	_, ok = ClaimsFromContext(jwtauth.NewContext(context.Background(), decoded, nil))
	assert.False(t, ok, "non-access token")
}

func TestDecode_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret", time.Hour).GenerateAccessToken("u1", "supervisor", false)
	require.NoError(t, err)

	_, err = NewJWTService("other", time.Hour).JWTAuth().Decode(token)
	assert.Error(t, err)
}
