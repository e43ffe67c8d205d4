// Package endian provides the byte order engine used to serialize the
// archive package's multi-byte header fields. The chunk and LUT codecs
// write their little-endian words with encoding/binary directly.
//
// The reference implementation this codec is modeled on is little-endian
// only; the engine still exposes both orders (mirroring how the rest of the
// ecosystem structures this concern) so a caller embedding the codec in a
// big-endian container has an explicit escape hatch rather than a silent
// byte-order mismatch.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface, satisfied by binary.LittleEndian and binary.BigEndian.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian returns the little-endian engine, the default and only order
// the OM file format reference implementation produces.
func LittleEndian() Engine {
	return binary.LittleEndian
}

// BigEndian returns the big-endian engine, for embedding this codec in a
// container that requires big-endian payloads.
func BigEndian() Engine {
	return binary.BigEndian
}
