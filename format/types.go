// Package format defines the small, dependency-free vocabulary types shared
// across the chunk codec: element data types and compression modes.
package format

// DataType identifies the scalar type of the elements in the caller's
// logical array, before any lossy narrowing performed by a CompressionMode.
type DataType uint8

const (
	Int8 DataType = iota + 1
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

// String returns the canonical name of the data type.
func (d DataType) String() string {
	switch d {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Size returns the uncompressed, caller-facing width in bytes of one element
// of this data type.
func (d DataType) Size() int {
	switch d {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// CompressionMode selects the filter and entropy codec pipeline used for a
// chunk, and fixes the chunk-buffer element width.
type CompressionMode uint8

const (
	// PforDelta2D16 is lossy: float32 source values are linearly scaled to
	// int16, row-delta filtered, and entropy coded with 16-bit zig-zag PFOR.
	PforDelta2D16 CompressionMode = iota + 1

	// FpxXor2D is lossless: float32 or float64 values are row-XOR filtered
	// and entropy coded with the FPX floating-point codec.
	FpxXor2D

	// PforDelta2D16Log is PforDelta2D16 with a sign-preserving log1p-style
	// transform applied before scaling, improving dynamic range for
	// heavy-tailed variables (e.g. precipitation).
	PforDelta2D16Log
)

// String returns the canonical name of the compression mode.
func (c CompressionMode) String() string {
	switch c {
	case PforDelta2D16:
		return "PforDelta2D16"
	case FpxXor2D:
		return "FpxXor2D"
	case PforDelta2D16Log:
		return "PforDelta2D16Log"
	default:
		return "unknown"
	}
}
