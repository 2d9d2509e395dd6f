package noncex_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/mgu/pkg/noncex"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const action = "mgu_api"

func newManager(t *testing.T, now *time.Time) *noncex.Manager {
	t.Helper()
	m, err := noncex.New([]byte("test-secret"), time.Hour, noncex.WithClock(func() time.Time { return *now }))
	require.NoError(t, err)
	return m
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	m := newManager(t, &now)

	n, err := m.Issue(action)
	require.NoError(t, err)
	require.NotEmpty(t, n.Value)
	require.Equal(t, now.Add(time.Hour), n.ExpiresAt)

	claims, err := m.Verify(n.Value, action)
	require.NoError(t, err)
	require.Equal(t, noncex.Issuer, claims.Issuer)
	require.Equal(t, jwt.ClaimStrings{action}, claims.Audience)
	require.NotEmpty(t, claims.ID)
}

func TestVerifyRejects(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		now := time.Now()
		m := newManager(t, &now)
		_, err := m.Verify("", action)
		require.ErrorIs(t, err, noncex.ErrMissing)
		require.ErrorIs(t, err, noncex.ErrInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		m := newManager(t, &now)
		n, err := m.Issue(action)
		require.NoError(t, err)

		now = now.Add(time.Hour + time.Second)
		_, err = m.Verify(n.Value, action)
		require.ErrorIs(t, err, noncex.ErrInvalid)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong action", func(t *testing.T) {
		now := time.Now()
		m := newManager(t, &now)
		n, err := m.Issue(action)
		require.NoError(t, err)

		_, err = m.Verify(n.Value, "other_action")
		require.ErrorIs(t, err, noncex.ErrInvalid)
	})

	t.Run("tampered", func(t *testing.T) {
		now := time.Now()
		m := newManager(t, &now)
		n, err := m.Issue(action)
		require.NoError(t, err)

		parts := strings.Split(n.Value, ".")
		require.Len(t, parts, 3)
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		_, err = m.Verify(parts[0]+"."+parts[1]+"."+string(sig), action)
		require.ErrorIs(t, err, noncex.ErrInvalid)
	})

	t.Run("different secret", func(t *testing.T) {
		now := time.Now()
		m := newManager(t, &now)
		other, err := noncex.New([]byte("another-secret"), time.Hour)
		require.NoError(t, err)

		n, err := other.Issue(action)
		require.NoError(t, err)
		_, err = m.Verify(n.Value, action)
		require.ErrorIs(t, err, noncex.ErrInvalid)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		now := time.Now()
		m := newManager(t, &now)

		claims := jwt.RegisteredClaims{
			Issuer:    noncex.Issuer,
			Audience:  jwt.ClaimStrings{action},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Verify(signed, action)
		require.ErrorIs(t, err, noncex.ErrInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		now := time.Now()
		m := newManager(t, &now)
		_, err := m.Verify("not.a.jwt", action)
		require.True(t, errors.Is(err, noncex.ErrInvalid))
	})
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := noncex.New(nil, time.Hour)
	require.Error(t, err)
}

func TestDefaultTTL(t *testing.T) {
	m, err := noncex.New([]byte("s"), 0)
	require.NoError(t, err)
	require.Equal(t, noncex.DefaultTTL, m.TTL())
}
