package claims_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pasetokit/pkg/claims"
	"github.com/dmitrymomot/pasetokit/pkg/paseto"
)

type sessionClaims struct {
	claims.RegisteredClaims
	Role string `json:"role,omitempty"`
}

func localKey(t *testing.T) *paseto.Key {
	t.Helper()
	key, err := paseto.GenerateLocalKey(paseto.V4)
	require.NoError(t, err)
	return key
}

func TestNew(t *testing.T) {
	t.Parallel()

	c := claims.New("user_42")
	assert.Equal(t, "user_42", c.Subject)
	assert.NotEmpty(t, c.TokenID)
	require.NotNil(t, c.IssuedAt)
	assert.WithinDuration(t, time.Now(), *c.IssuedAt, time.Minute)

	// Token IDs are unique per call.
	assert.NotEqual(t, c.TokenID, claims.New("user_42").TokenID)
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()
	key := localKey(t)

	c := sessionClaims{RegisteredClaims: claims.New("user_42"), Role: "admin"}
	c.Issuer = "pasetokit-test"
	c.Expiration = claims.In(time.Hour)

	token, err := claims.Issue(key, c)
	require.NoError(t, err)

	parsed, footer, err := claims.Parse[sessionClaims](key, token)
	require.NoError(t, err)
	assert.Equal(t, c.Subject, parsed.Subject)
	assert.Equal(t, c.TokenID, parsed.TokenID)
	assert.Equal(t, c.Issuer, parsed.Issuer)
	assert.Equal(t, "admin", parsed.Role)
	assert.Empty(t, footer)
	require.NotNil(t, parsed.Expiration)
	assert.True(t, parsed.Expiration.Equal(*c.Expiration))
}

func TestIssueWithFooter(t *testing.T) {
	t.Parallel()
	key := localKey(t)

	token, err := claims.Issue(key, claims.New("user_42"), paseto.WithFooter([]byte("kid:main")))
	require.NoError(t, err)

	_, footer, err := claims.Parse[claims.RegisteredClaims](key, token)
	require.NoError(t, err)
	assert.Equal(t, []byte("kid:main"), footer)
}

func TestParseTemporalValidation(t *testing.T) {
	t.Parallel()
	key := localKey(t)

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		c := claims.New("user_42")
		c.Expiration = claims.In(-time.Minute)

		token, err := claims.Issue(key, c)
		require.NoError(t, err)

		_, _, err = claims.Parse[claims.RegisteredClaims](key, token)
		require.ErrorIs(t, err, claims.ErrTokenExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		t.Parallel()
		c := claims.New("user_42")
		c.NotBefore = claims.In(time.Hour)

		token, err := claims.Issue(key, c)
		require.NoError(t, err)

		_, _, err = claims.Parse[claims.RegisteredClaims](key, token)
		require.ErrorIs(t, err, claims.ErrTokenNotYetValid)
	})

	t.Run("unset temporal claims pass", func(t *testing.T) {
		t.Parallel()
		token, err := claims.Issue(key, claims.RegisteredClaims{Subject: "user_42"})
		require.NoError(t, err)

		_, _, err = claims.Parse[claims.RegisteredClaims](key, token)
		require.NoError(t, err)
	})
}

func TestParseWithWrongKey(t *testing.T) {
	t.Parallel()

	token, err := claims.Issue(localKey(t), claims.New("user_42"))
	require.NoError(t, err)

	_, _, err = claims.Parse[claims.RegisteredClaims](localKey(t), token)
	require.ErrorIs(t, err, paseto.ErrDecrypt)
}

func TestParseNonJSONPayload(t *testing.T) {
	t.Parallel()
	key := localKey(t)

	token, err := paseto.Encode(key, []byte("not json"))
	require.NoError(t, err)

	_, _, err = claims.Parse[claims.RegisteredClaims](key, token)
	require.ErrorIs(t, err, claims.ErrInvalidPayload)
}

func TestPublicModeClaims(t *testing.T) {
	t.Parallel()
	secret, public, err := paseto.GenerateKeyPair(paseto.V4)
	require.NoError(t, err)

	c := sessionClaims{RegisteredClaims: claims.New("user_42"), Role: "viewer"}
	token, err := claims.Issue(secret, c)
	require.NoError(t, err)

	parsed, _, err := claims.Parse[sessionClaims](public, token)
	require.NoError(t, err)
	assert.Equal(t, "viewer", parsed.Role)
}
