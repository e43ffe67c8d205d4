package chunkenc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-meteo/go-omchunk/format"
)

func TestCountChunksAndChunkBufferSize(t *testing.T) {
	dims := []int{10, 10}
	chunks := []int{3, 4}
	cfg, err := NewConfig(1, 0, format.FpxXor2D, format.Float32, dims, chunks, 0)
	require.NoError(t, err)

	// ceil(10/3) * ceil(10/4) = 4 * 3 = 12
	require.Equal(t, 12, cfg.CountChunks())
	// chunk volume 3*4=12 elements, 4 bytes each for lossless float32 mode
	require.Equal(t, 12*4, cfg.ChunkBufferSize())
}

func TestCountChunksInArray(t *testing.T) {
	dims := []int{10, 10}
	chunks := []int{3, 4}
	cfg, err := NewConfig(1, 0, format.FpxXor2D, format.Float32, dims, chunks, 0)
	require.NoError(t, err)

	// A 5x5 sub-array needs ceil(5/3)*ceil(5/4) = 2*2 = 4 chunks.
	require.Equal(t, 4, cfg.CountChunksInArray([]int{5, 5}))
}

func TestCompressedChunkBufferSizeAccountsForPadding(t *testing.T) {
	dims := []int{16, 16}
	cfg, err := NewConfig(100, 0, format.PforDelta2D16, format.Float32, dims, dims, 0)
	require.NoError(t, err)

	l := 16 * 16
	want := (l+255)/256 + (l+32)*2 // bytesPerElementCompressed == 2 for int16 chunk buffer
	require.Equal(t, want, cfg.CompressedChunkBufferSize())
}
