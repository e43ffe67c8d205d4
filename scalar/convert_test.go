package scalar

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func putFloat32(v float32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	return b
}

func getFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func getInt16(b []byte) int16 {
	return int16(binary.LittleEndian.Uint16(b)) //nolint:gosec
}

func TestFloatToInt16RoundTrip(t *testing.T) {
	const scale, offset = float32(100), float32(0)
	values := []float32{0, 1.5, -1.5, 42.25, -42.25}

	for _, v := range values {
		src := putFloat32(v)
		dst := make([]byte, 2)
		FloatToInt16(dst, src, 1, scale, offset)

		back := make([]byte, 4)
		Int16ToFloat(back, dst, 1, scale, offset)

		require.InDelta(t, v, getFloat32(back), 1.0/float64(scale))
	}
}

func TestFloatToInt16SaturatesRange(t *testing.T) {
	const scale, offset = float32(1), float32(0)
	src := putFloat32(1e9)
	dst := make([]byte, 2)
	FloatToInt16(dst, src, 1, scale, offset)
	require.Equal(t, int16(math.MaxInt16), getInt16(dst))

	src = putFloat32(-1e9)
	FloatToInt16(dst, src, 1, scale, offset)
	require.Equal(t, int16(math.MinInt16+1), getInt16(dst))
}

func TestFloatToInt16NaNSentinel(t *testing.T) {
	const scale, offset = float32(1), float32(0)
	src := putFloat32(float32(math.NaN()))
	dst := make([]byte, 2)
	FloatToInt16(dst, src, 1, scale, offset)
	require.Equal(t, int16(NaNSentinel), getInt16(dst))

	back := make([]byte, 4)
	Int16ToFloat(back, dst, 1, scale, offset)
	require.True(t, math.IsNaN(float64(getFloat32(back))))
}

func TestFloatToInt16LogRoundTrip(t *testing.T) {
	const scale, offset = float32(1000), float32(0)
	values := []float32{0, 0.01, 1, 100, -5, -0.5}

	for _, v := range values {
		src := putFloat32(v)
		dst := make([]byte, 2)
		FloatToInt16Log(dst, src, 1, scale, offset)

		back := make([]byte, 4)
		Int16ToFloatLog(back, dst, 1, scale, offset)

		require.InDelta(t, v, getFloat32(back), 0.05+math.Abs(float64(v))*0.01)
	}
}

func TestFloatToInt16LogNaNSentinel(t *testing.T) {
	const scale, offset = float32(1000), float32(0)
	src := putFloat32(float32(math.NaN()))
	dst := make([]byte, 2)
	FloatToInt16Log(dst, src, 1, scale, offset)
	require.Equal(t, int16(NaNSentinel), getInt16(dst))

	back := make([]byte, 4)
	Int16ToFloatLog(back, dst, 1, scale, offset)
	require.True(t, math.IsNaN(float64(getFloat32(back))))
}
