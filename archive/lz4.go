package archive

import (
	"errors"

	"github.com/pierrec/lz4/v4"
)

// LZ4Compressor favors decompression speed over ratio, for archive blobs
// that are read far more often than they are written.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

func NewLZ4Compressor() LZ4Compressor { return LZ4Compressor{} }

// Compress allocates a fresh lz4.Compressor per call rather than pooling
// one: mebo pools it because its compress package sits on the per-chunk hot
// path, but archive.Pack runs once per variable, where construction cost is
// negligible next to the compression itself.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	var lc lz4.Compressor
	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress grows its scratch buffer geometrically since LZ4 block format
// carries no decompressed-size header — this is inherent to the format, not
// hot-path tuning, so it applies regardless of call frequency.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
