package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/blogstack-go/apperror"
	"github.com/user/blogstack-go/config"
)

func newTestIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return NewTokenIssuer(config.AuthConfig{JWTSecret: secret, TokenDuration: ttl})
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer("test-secret", -time.Second)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err), "expired token must surface as an auth error")
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := newTestIssuer("right-secret", time.Hour).Issue(42)
	require.NoError(t, err)

	_, err = newTestIssuer("wrong-secret", time.Hour).Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer("test-secret", time.Hour)

	for _, garbage := range []string{"", "not.a.jwt", "eyJhbGciOiJIUzI1NiJ9"} {
		_, err := issuer.Verify(garbage)
		require.Error(t, err, "token %q must be rejected", garbage)
		assert.True(t, apperror.IsAuthError(err))
	}
}

func TestTokenIssuer_MissingSecret(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer("", time.Hour)

	_, err := issuer.Issue(42)
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.InternalError, appErr.Type)
}

func TestTokenIssuer_ExpiryWindow(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	// A token issued just now is accepted for its whole lifetime; parse
	// the claims to confirm the expiry sits exactly one TTL after issuance.
	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}
