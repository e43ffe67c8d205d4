// Package omchunk provides a chunked, multi-dimensional array codec for
// weather/climate gridded data.
//
// An N-dimensional array is partitioned into fixed-shape chunks; each chunk
// is independently filtered (2-D delta or XOR prediction) and entropy coded
// (PFOR or FPX), producing a payload blob plus a lookup table (LUT)
// recording every chunk's byte offset so a reader can retrieve any single
// chunk without scanning the stream. This package fixes the core codec
// surface; the outer file container (header, variable directory,
// hierarchical layout) is a caller concern.
//
// # Basic usage
//
//	cfg, err := chunkenc.NewConfig(scale, offset, format.PforDelta2D16, format.Float32,
//	    dims, chunks, 0)
//
//	chunkBuf := make([]byte, cfg.ChunkBufferSize())
//	out := make([]byte, cfg.CompressedChunkBufferSize())
//	n, err := cfg.CompressChunk(out, chunkBuf, array, dims, arrayOffset, arrayCount, chunkIndex, 0)
//
// For cold storage or network transport, Pack/Unpack wrap a variable's full
// chunk stream and compressed LUT with a secondary general-purpose
// compressor and an integrity checksum; see the archive package.
package omchunk

import (
	"github.com/open-meteo/go-omchunk/archive"
	"github.com/open-meteo/go-omchunk/chunkenc"
	"github.com/open-meteo/go-omchunk/format"
	"github.com/open-meteo/go-omchunk/internal/pool"
	"github.com/open-meteo/go-omchunk/lut"
)

// NewConfig constructs an immutable encoder/decoder configuration for one
// variable. See chunkenc.NewConfig for parameter semantics.
func NewConfig(
	scale, offset float32,
	mode format.CompressionMode,
	dtype format.DataType,
	dims, chunks []int,
	lutChunkElementCount int,
) (*chunkenc.Config, error) {
	return chunkenc.NewConfig(scale, offset, mode, dtype, dims, chunks, lutChunkElementCount)
}

// CompressLUT delta-PFOR-compresses a variable's chunk-offset table
// group-wise and returns the packed bytes. See the lut package for the
// group-at-a-time Reader used to decode it back.
func CompressLUT(offsets []uint64, lutChunkElementCount int) ([]byte, error) {
	size, err := lut.BufferSize(offsets, lutChunkElementCount)
	if err != nil {
		return nil, err
	}

	out := make([]byte, size)
	n, err := lut.Compress(offsets, lutChunkElementCount, out)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}

// Pack bundles a variable's concatenated chunk stream and compressed LUT
// into a single self-describing, checksummed blob suitable for cold
// storage, applying the given secondary compressor.
func Pack(kind archive.Kind, chunkStream, compressedLUT []byte) ([]byte, error) {
	return archive.Pack(kind, chunkStream, compressedLUT)
}

// Unpack reverses Pack, verifying the integrity checksum before returning
// the chunk stream and compressed LUT it wraps.
func Unpack(blob []byte) (chunkStream, compressedLUT []byte, err error) {
	return archive.Unpack(blob)
}

// ChunkScratch is a pooled, growable scratch buffer, suitable for use as
// either the chunkBuffer or out argument to CompressChunk/DecompressChunk.
// Callers that compress many chunks in sequence should acquire one per
// worker and reuse it rather than allocating fresh buffers per call.
type ChunkScratch = pool.ByteBuffer

// AcquireChunkScratch retrieves a reset scratch buffer from the shared
// pool. Call ReleaseChunkScratch when done with it.
func AcquireChunkScratch() *ChunkScratch {
	return pool.GetChunkBuffer()
}

// ReleaseChunkScratch returns a scratch buffer acquired via
// AcquireChunkScratch to the shared pool. Buffers that grew past
// pool.ChunkBufferMaxThreshold are discarded rather than retained.
func ReleaseChunkScratch(b *ChunkScratch) {
	pool.PutChunkBuffer(b)
}
