package omchunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-meteo/go-omchunk/archive"
	"github.com/open-meteo/go-omchunk/format"
	"github.com/open-meteo/go-omchunk/lut"
)

func TestNewConfigAndCompressLUT(t *testing.T) {
	dims := []int{4, 4}
	cfg, err := NewConfig(1, 0, format.FpxXor2D, format.Float32, dims, dims, 0)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.CountChunks())

	offsets := []uint64{0, 120, 250, 400}
	compressed, err := CompressLUT(offsets, 2)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	r, err := lut.NewReader(compressed, len(offsets), 2)
	require.NoError(t, err)
	for k, want := range offsets {
		got, err := r.Offset(k)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestPackUnpackFacade(t *testing.T) {
	chunkStream := []byte("some entropy-coded chunk bytes, repeated, repeated, repeated")
	lutBytes := []byte{9, 9, 9, 9}

	blob, err := Pack(archive.KindS2, chunkStream, lutBytes)
	require.NoError(t, err)

	gotChunkStream, gotLUT, err := Unpack(blob)
	require.NoError(t, err)
	require.Equal(t, chunkStream, gotChunkStream)
	require.Equal(t, lutBytes, gotLUT)
}

func TestChunkScratchPooling(t *testing.T) {
	b := AcquireChunkScratch()
	require.NotNil(t, b)
	b.ExtendOrGrow(128)
	require.Equal(t, 128, b.Len())
	ReleaseChunkScratch(b)
}
