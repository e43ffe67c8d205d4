package archive

import "github.com/klauspost/compress/s2"

// S2Compressor is a fast block compressor for archive blobs where
// compression speed matters more than ratio (e.g. re-bundling variables
// that already compressed well at the chunk level).
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

func NewS2Compressor() S2Compressor { return S2Compressor{} }

func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
