// Package archive bundles a variable's full encoded output — the
// concatenated chunk payload stream plus its compressed LUT — into a single
// self-describing blob suitable for cold storage or network transport, and
// wraps that blob with a general-purpose secondary compressor plus an
// xxhash integrity checksum.
//
// This sits strictly above the core chunk codec: the core already produces
// near-incompressible entropy-coded bytes, so the secondary compressor
// exists for the cases where it still helps (sparse/low-information LUTs,
// mixed variables bundled together) and costs nothing when it doesn't,
// since KindNone is always available.
package archive

import "fmt"

// Compressor compresses an archive blob.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses an archive blob.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Kind identifies the secondary compressor wrapping an archive blob.
type Kind uint8

const (
	KindNone Kind = iota
	KindZstd
	KindS2
	KindLZ4
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindZstd:
		return "zstd"
	case KindS2:
		return "s2"
	case KindLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// CreateCodec returns the Codec for kind.
func CreateCodec(kind Kind) (Codec, error) {
	switch kind {
	case KindNone:
		return NewNoOpCompressor(), nil
	case KindZstd:
		return NewZstdCompressor(), nil
	case KindS2:
		return NewS2Compressor(), nil
	case KindLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("archive: invalid compression kind %d", kind)
	}
}
