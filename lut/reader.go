package lut

import (
	"fmt"

	"github.com/open-meteo/go-omchunk/entropy"
	"github.com/open-meteo/go-omchunk/errs"
)

// Reader decodes offsets out of a compressed LUT produced by Compress,
// recovering any single group in O(1) using only its stride, group size
// and uncompressed length — the same three values a container header
// stores alongside the compressed payload.
type Reader struct {
	payload []byte
	stride  int
	g       int
	lutLen  int
}

// NewReader constructs a Reader over a compressed LUT payload (the bytes
// Compress wrote, i.e. out[:bytesWritten]). lutLen is C+1, the number of
// uncompressed offsets the table holds.
func NewReader(payload []byte, lutLen, g int) (*Reader, error) {
	if g < 1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLutChunkLength, g)
	}
	n := groupCount(lutLen, g)
	if n == 0 {
		return nil, fmt.Errorf("%w: lut length %d", errs.ErrInvalidShape, lutLen)
	}
	if len(payload)%n != 0 {
		return nil, fmt.Errorf("%w: lut payload of %d bytes does not divide into %d groups", errs.ErrTruncatedPayload, len(payload), n)
	}

	return &Reader{
		payload: payload,
		stride:  len(payload) / n,
		g:       g,
		lutLen:  lutLen,
	}, nil
}

// GroupCount returns N, the number of compressed groups.
func (r *Reader) GroupCount() int {
	return groupCount(r.lutLen, r.g)
}

// Group decodes and returns the uncompressed offsets belonging to group i.
// Its length is g, except for the final group which may be shorter.
func (r *Reader) Group(i int) ([]uint64, error) {
	n := r.GroupCount()
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%w: group %d of %d", errs.ErrChunkIndexOutOfRange, i, n)
	}

	start := i * r.g
	count := min(r.g, r.lutLen-start)

	base := i * r.stride
	block := r.payload[base : base+r.stride]

	out := make([]uint64, count)
	if err := entropy.DecodePFOR64Delta(out, block, count); err != nil {
		return nil, fmt.Errorf("lut: decoding group %d: %w", i, err)
	}

	return out, nil
}

// Offset decodes only the group containing element k and returns lut[k].
// Callers needing a handful of scattered offsets should prefer this over
// decoding every group; callers needing the whole table should decode each
// group once via Group.
func (r *Reader) Offset(k int) (uint64, error) {
	if k < 0 || k >= r.lutLen {
		return 0, fmt.Errorf("%w: index %d of %d", errs.ErrChunkIndexOutOfRange, k, r.lutLen)
	}

	group, err := r.Group(k / r.g)
	if err != nil {
		return 0, err
	}

	return group[k%r.g], nil
}
