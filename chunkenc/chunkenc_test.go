package chunkenc

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-meteo/go-omchunk/errs"
	"github.com/open-meteo/go-omchunk/format"
)

func putFloat32Array(vals []float32) []byte {
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func readFloat32Array(buf []byte, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

// compressAndDecompressFull round-trips the entire array as a single chunk
// (chunks == dims), which is the common case for tests that only care about
// the filter/entropy pipeline rather than multi-chunk enumeration.
func compressAndDecompressFull(t *testing.T, cfg *Config, array []byte) []byte {
	t.Helper()

	dims := cfg.Dims()
	chunkBuf := make([]byte, cfg.ChunkBufferSize())
	out := make([]byte, cfg.CompressedChunkBufferSize())

	n, err := cfg.CompressChunk(out, chunkBuf, array, dims, make([]int, len(dims)), dims, 0, 0)
	require.NoError(t, err)

	result := make([]byte, len(array))
	chunkBuf2 := make([]byte, cfg.ChunkBufferSize())
	err = cfg.DecompressChunk(result, dims, make([]int, len(dims)), dims, 0, 0, out[:n], chunkBuf2)
	require.NoError(t, err)

	return result
}

func TestPforDelta2D16RoundTrip(t *testing.T) {
	dims := []int{4, 5}
	cfg, err := NewConfig(100, 0, format.PforDelta2D16, format.Float32, dims, dims, 0)
	require.NoError(t, err)

	vals := make([]float32, 20)
	for i := range vals {
		vals[i] = float32(i) - 10
	}
	array := putFloat32Array(vals)

	result := compressAndDecompressFull(t, cfg, array)
	got := readFloat32Array(result, 20)

	for i, v := range vals {
		require.InDelta(t, v, got[i], 0.01, "element %d", i)
	}
}

func TestFpxXor2DFloat32LosslessRoundTrip(t *testing.T) {
	dims := []int{3, 7}
	cfg, err := NewConfig(0, 0, format.FpxXor2D, format.Float32, dims, dims, 0)
	require.NoError(t, err)

	vals := []float32{1, 2, 3, 4, 5, 6, 7, 1.5, -2.5, 100, 0, -0, 3.14, 2.71, 1e10, -1e-10, 0, 1, 2, 3, 4}
	array := putFloat32Array(vals)

	result := compressAndDecompressFull(t, cfg, array)
	got := readFloat32Array(result, len(vals))

	require.Equal(t, vals, got)
}

func TestPforDelta2D16RequiresFloat32(t *testing.T) {
	dims := []int{5}
	_, err := NewConfig(1, 0, format.PforDelta2D16, format.Int32, dims, dims, 0)
	require.ErrorIs(t, err, errs.ErrInvalidDataType)
}

func TestFpxXor2DRejectsIntegerDtype(t *testing.T) {
	// Testable property: any integer dtype with any compression mode fails
	// with InvalidDataType, since none of the three compression modes
	// accept an integer chunk-buffer representation.
	dims := []int{5}
	_, err := NewConfig(0, 0, format.FpxXor2D, format.Int32, dims, dims, 0)
	require.ErrorIs(t, err, errs.ErrInvalidDataType)
}

func TestNewConfigRejectsUnknownCompressionMode(t *testing.T) {
	dims := []int{2, 2}
	_, err := NewConfig(1, 0, format.CompressionMode(99), format.Float32, dims, dims, 0)
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestNewConfigRejectsDimensionMismatch(t *testing.T) {
	_, err := NewConfig(1, 0, format.FpxXor2D, format.Float32, []int{2, 2}, []int{2}, 0)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestNewConfigDefaultsLutChunkElementCount(t *testing.T) {
	dims := []int{2, 2}
	cfg, err := NewConfig(1, 0, format.FpxXor2D, format.Float32, dims, dims, 0)
	require.NoError(t, err)
	require.Equal(t, DefaultLUTElements, cfg.LUTChunkElementCount())
}

func TestNewConfigRejectsOversizedLutChunkElementCount(t *testing.T) {
	dims := []int{2, 2}
	_, err := NewConfig(1, 0, format.FpxXor2D, format.Float32, dims, dims, MaxLUTElements+1)
	require.ErrorIs(t, err, errs.ErrInvalidLutChunkLength)
}

func TestChunkedMultiChunkRoundTrip(t *testing.T) {
	// Array larger than one chunk: exercises chunk enumeration and the
	// edge-truncated last chunk along each axis.
	dims := []int{5, 7}
	chunks := []int{2, 3}
	cfg, err := NewConfig(0, 0, format.FpxXor2D, format.Float32, dims, chunks, 0)
	require.NoError(t, err)

	vals := make([]float32, 35)
	for i := range vals {
		vals[i] = float32(i)*1.25 - 10
	}
	array := putFloat32Array(vals)

	result := make([]byte, len(array))
	chunkBuf := make([]byte, cfg.ChunkBufferSize())
	out := make([]byte, cfg.CompressedChunkBufferSize())
	decodeBuf := make([]byte, cfg.ChunkBufferSize())

	n := cfg.CountChunks()
	require.Equal(t, 3*3, n) // ceil(5/2)*ceil(7/3) = 3*3

	offset := make([]int, len(dims))
	for idx := 0; idx < n; idx++ {
		written, err := cfg.CompressChunk(out, chunkBuf, array, dims, offset, dims, idx, 0)
		require.NoError(t, err)

		err = cfg.DecompressChunk(result, dims, offset, dims, idx, 0, out[:written], decodeBuf)
		require.NoError(t, err)
	}

	got := readFloat32Array(result, len(vals))
	require.Equal(t, vals, got)
}

func TestCompressChunkOutOfBoundReadRejected(t *testing.T) {
	dims := []int{4}
	chunks := []int{4}
	cfg, err := NewConfig(0, 0, format.FpxXor2D, format.Float32, dims, chunks, 0)
	require.NoError(t, err)

	array := putFloat32Array([]float32{1, 2, 3, 4})
	chunkBuf := make([]byte, cfg.ChunkBufferSize())
	out := make([]byte, cfg.CompressedChunkBufferSize())

	// arrayCount describes only 2 elements while the chunk covers 4;
	// requesting chunk coverage beyond the described hyper-rectangle must
	// fail rather than read out of bounds.
	_, err = cfg.CompressChunk(out, chunkBuf, array, []int{4}, []int{0}, []int{2}, 0, 0)
	require.ErrorIs(t, err, errs.ErrOutOfBoundRead)
}
