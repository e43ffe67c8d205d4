package entropy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPFOR64DeltaRoundTripMonotonic(t *testing.T) {
	values := make([]uint64, 0, 600)
	var cur uint64
	for i := 0; i < 600; i++ {
		cur += uint64(i%5) * 37
		values = append(values, cur)
	}

	out := make([]byte, len(values)*16+1024)
	n, err := EncodePFOR64Delta(out, values)
	require.NoError(t, err)

	dst := make([]uint64, len(values))
	require.NoError(t, DecodePFOR64Delta(dst, out[:n], len(values)))
	require.Equal(t, values, dst)
}

func TestPFOR64DeltaRoundTripLargeOffsets(t *testing.T) {
	// LUT byte offsets can exceed 32 bits for very large files; verify the
	// low/high lane split reconstructs the full 64-bit range exactly.
	values := []uint64{
		0,
		1 << 40,
		(1 << 40) + 5,
		(1 << 41) + 10,
		(1 << 41) + 10, // repeated offset: zero-length chunk
	}

	out := make([]byte, 2048)
	n, err := EncodePFOR64Delta(out, values)
	require.NoError(t, err)

	dst := make([]uint64, len(values))
	require.NoError(t, DecodePFOR64Delta(dst, out[:n], len(values)))
	require.Equal(t, values, dst)
}

func TestPFOR64DeltaLowLaneWraparoundErrors(t *testing.T) {
	// The full uint64 sequence is non-decreasing, but the carry from low to
	// high lane makes the low 32 bits swing from just under 2^32 down to
	// near zero between consecutive entries. That swing is a delta whose
	// magnitude exceeds the signed int32 range fastpfor.PackDelta can
	// zigzag-encode on the low lane alone, and must surface as an error
	// rather than a panic.
	values := []uint64{
		0xFFFFFFFE,
		(1 << 32) + 0x10,
	}

	out := make([]byte, 2048)
	_, err := EncodePFOR64Delta(out, values)
	require.Error(t, err)
}

func TestPFOR64DeltaSingleValue(t *testing.T) {
	values := []uint64{12345}
	out := make([]byte, 256)
	n, err := EncodePFOR64Delta(out, values)
	require.NoError(t, err)

	dst := make([]uint64, 1)
	require.NoError(t, DecodePFOR64Delta(dst, out[:n], 1))
	require.Equal(t, values, dst)
}
