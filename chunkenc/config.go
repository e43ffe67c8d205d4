// Package chunkenc implements the chunk codec's encoder and decoder: given an
// immutable Config describing a variable's shape, data type and compression
// mode, it enumerates chunks, gathers each one out of a caller-supplied
// source hyper-rectangle with run-detection, applies the configured 2-D
// filter, and entropy-codes the result; DecompressChunk reverses those steps.
package chunkenc

import (
	"fmt"

	"github.com/open-meteo/go-omchunk/entropy"
	"github.com/open-meteo/go-omchunk/errs"
	"github.com/open-meteo/go-omchunk/filter"
	"github.com/open-meteo/go-omchunk/format"
	"github.com/open-meteo/go-omchunk/scalar"
)

// MaxLUTElements bounds the LUT group size (lut_chunk_element_count).
const MaxLUTElements = 256

// DefaultLUTElements is used when a caller passes zero for
// lutChunkElementCount.
const DefaultLUTElements = 256

// Config is an immutable, read-only-after-construction encoder
// configuration for one variable. It owns no heap buffers; chunk and LUT
// scratch is supplied by the caller at every call.
type Config struct {
	scale  float32
	offset float32
	mode   format.CompressionMode
	dtype  format.DataType

	dims   []int
	chunks []int

	nChunks []int // ceil(dims[i]/chunks[i]) per axis

	lutChunkElementCount int

	bytesPerElement           int
	bytesPerElementCompressed int

	copyFn       scalar.CopyFunc // encode direction: source element -> chunk-buffer element
	decodeCopyFn scalar.CopyFunc // decode direction: chunk-buffer element -> destination element
	filterEn     filter.Func
	filterDe     filter.Func
	entropy      entropy.Pair
}

// NewConfig validates and constructs an encoder configuration.
//
// It mirrors the reference encoder's two-stage validation: the data type
// switch first assigns default element widths and an identity copy
// function, then the compression mode switch overrides the copy function,
// widths, filter and entropy callbacks for the three supported modes,
// rejecting any (mode, dtype) pair it does not recognize.
func NewConfig(
	scale, offset float32,
	mode format.CompressionMode,
	dtype format.DataType,
	dims, chunks []int,
	lutChunkElementCount int,
) (*Config, error) {
	if len(dims) == 0 || len(dims) != len(chunks) {
		return nil, fmt.Errorf("%w: dims has %d axes, chunks has %d", errs.ErrDimensionMismatch, len(dims), len(chunks))
	}
	for i, c := range chunks {
		if c < 1 {
			return nil, fmt.Errorf("%w: chunks[%d] = %d must be >= 1", errs.ErrInvalidShape, i, c)
		}
	}

	if lutChunkElementCount == 0 {
		lutChunkElementCount = DefaultLUTElements
	}
	if lutChunkElementCount < 1 || lutChunkElementCount > MaxLUTElements {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLutChunkLength, lutChunkElementCount)
	}

	cfg := &Config{
		scale:                scale,
		offset:               offset,
		mode:                 mode,
		dtype:                dtype,
		dims:                 append([]int(nil), dims...),
		chunks:               append([]int(nil), chunks...),
		lutChunkElementCount: lutChunkElementCount,
	}
	cfg.nChunks = make([]int, len(dims))
	for i := range dims {
		cfg.nChunks[i] = divideRoundedUp(dims[i], chunks[i])
	}

	if err := cfg.applyDataType(); err != nil {
		return nil, err
	}
	if err := cfg.applyCompressionMode(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDataType() error {
	switch c.dtype {
	case format.Int8, format.Uint8:
		c.bytesPerElement = 1
		c.bytesPerElementCompressed = 1
		c.copyFn = scalar.Copy8
	case format.Int16, format.Uint16:
		c.bytesPerElement = 2
		c.bytesPerElementCompressed = 2
		c.copyFn = scalar.Copy16
	case format.Int32, format.Uint32, format.Float32:
		c.bytesPerElement = 4
		c.bytesPerElementCompressed = 4
		c.copyFn = scalar.Copy32
	case format.Int64, format.Uint64, format.Float64:
		c.bytesPerElement = 8
		c.bytesPerElementCompressed = 8
		c.copyFn = scalar.Copy64
	default:
		return fmt.Errorf("%w: %v", errs.ErrInvalidDataType, c.dtype)
	}
	// Identity copies round-trip through the same function in either
	// direction; the lossy compression modes override this below.
	c.decodeCopyFn = c.copyFn

	return nil
}

func (c *Config) applyCompressionMode() error {
	switch c.mode {
	case format.PforDelta2D16:
		if c.dtype != format.Float32 {
			return fmt.Errorf("%w: PforDelta2D16 requires float32, got %v", errs.ErrInvalidDataType, c.dtype)
		}
		c.bytesPerElement = 4
		c.bytesPerElementCompressed = 2
		c.copyFn = scalar.FloatToInt16
		c.decodeCopyFn = scalar.Int16ToFloat
		c.filterEn = filter.Delta2DEncode
		c.filterDe = filter.Delta2DDecode
		c.entropy = entropy.PFOR16

	case format.PforDelta2D16Log:
		if c.dtype != format.Float32 {
			return fmt.Errorf("%w: PforDelta2D16Log requires float32, got %v", errs.ErrInvalidDataType, c.dtype)
		}
		c.bytesPerElement = 4
		c.bytesPerElementCompressed = 2
		c.copyFn = scalar.FloatToInt16Log
		c.decodeCopyFn = scalar.Int16ToFloatLog
		c.filterEn = filter.Delta2DEncode
		c.filterDe = filter.Delta2DDecode
		c.entropy = entropy.PFOR16

	case format.FpxXor2D:
		switch c.dtype {
		case format.Float32:
			c.filterEn = filter.XOR2DEncode32
			c.filterDe = filter.XOR2DDecode32
			c.entropy = entropy.FPX32
		case format.Float64:
			c.filterEn = filter.XOR2DEncode64
			c.filterDe = filter.XOR2DDecode64
			c.entropy = entropy.FPX64
		default:
			return fmt.Errorf("%w: FpxXor2D requires float32 or float64, got %v", errs.ErrInvalidDataType, c.dtype)
		}

	default:
		return fmt.Errorf("%w: %v", errs.ErrInvalidCompressionType, c.mode)
	}

	return nil
}

func divideRoundedUp(a, b int) int {
	return (a + b - 1) / b
}

// DataType returns the configured source data type (pre-conversion).
func (c *Config) DataType() format.DataType { return c.dtype }

// CompressionMode returns the configured compression mode.
func (c *Config) CompressionMode() format.CompressionMode { return c.mode }

// Dims returns a copy of the logical array shape.
func (c *Config) Dims() []int { return append([]int(nil), c.dims...) }

// Chunks returns a copy of the chunk shape.
func (c *Config) Chunks() []int { return append([]int(nil), c.chunks...) }

// LUTChunkElementCount returns g, the LUT group size.
func (c *Config) LUTChunkElementCount() int { return c.lutChunkElementCount }

// BytesPerElement returns the element width of the caller's source array.
func (c *Config) BytesPerElement() int { return c.bytesPerElement }

// BytesPerElementCompressed returns the element width inside the packed,
// pre-entropy chunk buffer.
func (c *Config) BytesPerElementCompressed() int { return c.bytesPerElementCompressed }
