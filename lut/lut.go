// Package lut compresses the chunk-offset lookup table: the array of C+1
// monotonically non-decreasing byte offsets a container uses to locate any
// chunk's payload without scanning the stream.
//
// The table is partitioned into fixed-size groups of lutChunkElementCount
// offsets, each group delta-PFOR encoded independently, and every compressed
// group is padded out to the same stride so a reader can seek straight to
// group i with a single multiplication.
package lut

import (
	"fmt"

	"github.com/open-meteo/go-omchunk/entropy"
	"github.com/open-meteo/go-omchunk/errs"
)

const u64Size = 8

// slackWords is the number of trailing u64-sized bytes reserved on top of
// the largest observed group to absorb the entropy encoder's internal
// write-past-end padding.
const slackWords = 32

// groupCount returns N = ceil(lutLen / g).
func groupCount(lutLen, g int) int {
	return (lutLen + g - 1) / g
}

// BufferSize pre-measures the compressed size of every group in lut and
// returns the total output buffer size Compress needs: the largest group
// size times the group count, plus a fixed slack term.
//
// This requires one full pre-pass encoding every group, mirroring the
// reference's two-call lut_buffer_size/compress_lut contract.
func BufferSize(lut []uint64, g int) (int, error) {
	if g < 1 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidLutChunkLength, g)
	}

	n := groupCount(len(lut), g)
	scratch := make([]byte, maxGroupFrameSize(g))

	maxSize := 0
	for i := 0; i < n; i++ {
		group := sliceGroup(lut, g, i)
		written, err := entropy.EncodePFOR64Delta(scratch, group)
		if err != nil {
			return 0, fmt.Errorf("lut: measuring group %d: %w", i, err)
		}
		if written > maxSize {
			maxSize = written
		}
	}

	return maxSize*n + slackWords*u64Size, nil
}

// Compress partitions lut into groups of g elements, delta-PFOR encodes
// each group independently, and writes every group at a uniform stride into
// out. out must be at least the size BufferSize(lut, g) returned.
//
// It returns the number of payload bytes written: len(out) - 32*sizeof(u64).
// The stride itself (needed by a reader to seek to group i) is
// Stride(len(out), len(lut), g); it is not re-derived here since the
// container header is expected to carry it alongside N and g.
func Compress(lut []uint64, g int, out []byte) (int, error) {
	if g < 1 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidLutChunkLength, g)
	}

	n := groupCount(len(lut), g)
	payloadSize := len(out) - slackWords*u64Size
	if payloadSize < 0 || n == 0 {
		return 0, fmt.Errorf("%w: lut output buffer too small", errs.ErrBufferTooSmall)
	}
	stride := payloadSize / n

	for i := 0; i < n; i++ {
		group := sliceGroup(lut, g, i)
		base := i * stride
		if base+stride > len(out) {
			return 0, fmt.Errorf("%w: group %d exceeds lut output buffer", errs.ErrBufferTooSmall, i)
		}
		written, err := entropy.EncodePFOR64Delta(out[base:base+stride], group)
		if err != nil {
			return 0, fmt.Errorf("lut: compressing group %d: %w", i, err)
		}
		if written > stride {
			return 0, fmt.Errorf("%w: group %d encoded to %d bytes, exceeds stride %d",
				errs.ErrBufferTooSmall, i, written, stride)
		}
	}

	return payloadSize, nil
}

// Stride returns group_stride given the whole LUT output buffer size
// (bufferSize, as returned by BufferSize; the payload is bufferSize -
// 32*sizeof(u64)), the uncompressed LUT length and the group size g. A reader recovers it from the container header alongside N and g;
// it is exposed here so callers that only persisted bufferSize can still
// recompute it.
func Stride(bufferSize, lutLen, g int) int {
	n := groupCount(lutLen, g)
	if n == 0 {
		return 0
	}

	return (bufferSize - slackWords*u64Size) / n
}

func sliceGroup(lut []uint64, g, i int) []uint64 {
	start := i * g
	end := min(start+g, len(lut))

	return lut[start:end]
}

// maxGroupFrameSize bounds the framed output size EncodePFOR64Delta can
// produce for a group of at most g elements: each lane packs in
// PFOR16BlockSize blocks, and every block carries a 4-byte length prefix
// plus FastPFOR's own block overhead, which we bound generously here since
// BufferSize only uses this as pre-pass scratch capacity, not a wire limit.
func maxGroupFrameSize(g int) int {
	blocks := (g+entropy.PFOR16BlockSize-1)/entropy.PFOR16BlockSize + 1
	perBlock := entropy.PFOR16BlockSize*4 + 64

	return 2 * blocks * perBlock
}
