package jwt

import (
	"testing"

	"github.com/fournilsoft/backoffice-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key", "1h", "24h")
}

func TestAccessTokenCarriesClaims(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "admin@fournil.ma", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Positive(t, expiresAt)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)
	role, _ := token.Get("role")
	assert.Equal(t, "admin", role)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	userID, err := svc.DecodeRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestDecodeRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	// An access token must not pass as a refresh token.
	tokenString, _, err := svc.GenerateAccessToken("user-1", "admin@fournil.ma", user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.DecodeRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-7")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("some-token", 1234567890)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}
