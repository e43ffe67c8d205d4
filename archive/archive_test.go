package archive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateCodecAllKinds(t *testing.T) {
	for _, kind := range []Kind{KindNone, KindZstd, KindS2, KindLZ4} {
		codec, err := CreateCodec(kind)
		require.NoError(t, err, kind.String())
		require.NotNil(t, codec)

		data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 50)
		compressed, err := codec.Compress(data)
		require.NoError(t, err, kind.String())

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, kind.String())
		require.Equal(t, data, decompressed, kind.String())
	}
}

func TestCreateCodecRejectsUnknownKind(t *testing.T) {
	_, err := CreateCodec(Kind(99))
	require.Error(t, err)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	chunkStream := bytes.Repeat([]byte{0xAB, 0xCD, 0xEF}, 100)
	lut := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	for _, kind := range []Kind{KindNone, KindZstd, KindS2, KindLZ4} {
		blob, err := Pack(kind, chunkStream, lut)
		require.NoError(t, err, kind.String())

		gotChunkStream, gotLUT, err := Unpack(blob)
		require.NoError(t, err, kind.String())
		require.Equal(t, chunkStream, gotChunkStream, kind.String())
		require.Equal(t, lut, gotLUT, kind.String())
	}
}

func TestUnpackRejectsBadMagic(t *testing.T) {
	blob, err := Pack(KindNone, []byte("chunk"), []byte("lut"))
	require.NoError(t, err)
	blob[0] ^= 0xFF

	_, _, err = Unpack(blob)
	require.Error(t, err)
}

func TestUnpackRejectsCorruptedChecksum(t *testing.T) {
	blob, err := Pack(KindNone, []byte("chunk-payload"), []byte("lut-payload"))
	require.NoError(t, err)

	// Corrupt a byte inside the payload region, past the 29-byte header.
	blob[30] ^= 0xFF

	_, _, err = Unpack(blob)
	require.Error(t, err)
}

func TestUnpackRejectsTruncatedBlob(t *testing.T) {
	_, _, err := Unpack([]byte{1, 2, 3})
	require.Error(t, err)
}
