package slogx_test

import (
	"testing"

	"github.com/aussiebroadwan/mgu/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	t.Parallel()

	t.Run("empty stays empty", func(t *testing.T) {
		require.Equal(t, "", slogx.Mask(""))
	})

	t.Run("short secrets are fully masked", func(t *testing.T) {
		require.Equal(t, "••••••••", slogx.Mask("12345678"))
	})

	t.Run("long secrets keep both ends", func(t *testing.T) {
		masked := slogx.Mask("abcd-super-secret-wxyz")
		require.Equal(t, "abcd", masked[:4])
		require.Contains(t, masked, "•")
		require.NotContains(t, masked, "super")
		require.True(t, len(masked) > 8)
		require.Equal(t, "wxyz", masked[len(masked)-4:])
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "abcdefgh…", slogx.Truncate("abcdefghijklmnop", 8))
	require.Equal(t, "•••", slogx.Truncate("abc", 8))
	require.Equal(t, "", slogx.Truncate("", 8))
}
