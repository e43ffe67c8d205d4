package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyWidths(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	t.Run("Copy8", func(t *testing.T) {
		dst := make([]byte, 4)
		Copy8(dst, src, 4, 0, 0)
		require.Equal(t, src[:4], dst)
	})

	t.Run("Copy16", func(t *testing.T) {
		dst := make([]byte, 8)
		Copy16(dst, src, 4, 0, 0)
		require.Equal(t, src[:8], dst)
	})

	t.Run("Copy32", func(t *testing.T) {
		dst := make([]byte, 16)
		Copy32(dst, src, 4, 0, 0)
		require.Equal(t, src[:16], dst)
	})

	t.Run("Copy64", func(t *testing.T) {
		// Copy64 must move the full 8 bytes per element, unlike the
		// reference C implementation which aliases to its 32-bit copy.
		wide := append(append([]byte{}, src...), src...)
		dst := make([]byte, 16)
		Copy64(dst, wide, 2, 0, 0)
		require.Equal(t, wide[:16], dst)
	})
}
