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
)

func setupAccessCodes(t *testing.T, digits int) accounts.AccessCodeService {
	t.Helper()
	svc, err := NewAccessCodeService(testSecret, time.Minute, digits, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return svc
}

func TestAccessCode_Current(t *testing.T) {
	svc := setupAccessCodes(t, 6)
	now := time.Unix(1_800_000_030, 0)

	code, expiresAt := svc.Current(now)
	assert.Len(t, code, 6)
	assert.Equal(t, time.Unix(1_800_000_060, 0).UTC(), expiresAt)

	same, _ := svc.Current(now.Add(29 * time.Second))
	assert.Equal(t, code, same)
}

func TestAccessCode_Verify(t *testing.T) {
	svc := setupAccessCodes(t, 6)
	now := time.Unix(1_800_000_030, 0)
	code, _ := svc.Current(now)

	assert.True(t, svc.Verify(code, now))
	assert.True(t, svc.Verify(code, now.Add(time.Minute)), "previous window is accepted")
	assert.False(t, svc.Verify(code, now.Add(2*time.Minute)))
	assert.False(t, svc.Verify("12345", now))
	assert.False(t, svc.Verify("", now))
}

func TestAccessCode_DigitsAndSecret(t *testing.T) {
	now := time.Unix(1_800_000_000, 0)

	code, _ := setupAccessCodes(t, 8).Current(now)
	assert.Len(t, code, 8)
	code, _ = setupAccessCodes(t, 10).Current(now)
	assert.Len(t, code, 10)

	other, err := NewAccessCodeService("another-secret-of-16+", time.Minute, 6, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	mine, _ := setupAccessCodes(t, 6).Current(now)
	theirs, _ := other.Current(now)
	assert.NotEqual(t, mine, theirs)
}

func TestNewAccessCodeService_Invalid(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	_, err := NewAccessCodeService("short", time.Minute, 6, log)
	assert.Error(t, err)
	_, err = NewAccessCodeService(testSecret, time.Millisecond, 6, log)
	assert.Error(t, err)
	_, err = NewAccessCodeService(testSecret, time.Minute, 3, log)
	assert.Error(t, err)
}
