//go:build unit
// +build unit

package cryptography

import (
	"testing"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwt "github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTIssuer_IssueVerify(t *testing.T) {
	issuer, err := NewJWTIssuer(testSecret, time.Hour, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	principal := &accounts.Principal{ID: "c0ffee00-0000-4000-8000-000000000001", Kind: accounts.KindEmployee, Name: "Carl", Role: accounts.RoleCEO}
	now := time.Now()

	token, issued, err := issuer.Issue(principal, now)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.TokenID)
	assert.WithinDuration(t, now.Add(time.Hour), issued.ExpiresAt, time.Second)

	verified, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, issued.TokenID, verified.TokenID)
	assert.Equal(t, principal, verified.Principal)
}

func TestJWTIssuer_Rejects(t *testing.T) {
	issuer, err := NewJWTIssuer(testSecret, time.Hour, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	principal := &accounts.Principal{ID: "c0ffee00-0000-4000-8000-000000000001", Kind: accounts.KindClient, Role: accounts.RoleClient}

	t.Run("expired", func(t *testing.T) {
		token, _, err := issuer.Issue(principal, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)
		_, err = issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewJWTIssuer("fedcba9876543210fedcba9876543210", time.Hour, testutil.SetupTestLogger(t))
		require.NoError(t, err)
		token, _, err := other.Issue(principal, time.Now())
		require.NoError(t, err)
		_, err = issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: principal.ID, ID: "x", Issuer: tokenIssuerName},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		assert.Error(t, err)
	})
}

func TestNewJWTIssuer_ShortSecret(t *testing.T) {
	_, err := NewJWTIssuer("short", time.Hour, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
