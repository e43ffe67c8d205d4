package archive

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/open-meteo/go-omchunk/endian"
)

// wireOrder is the byte order for every multi-byte header field this
// package writes, matching the core codec's little-endian-only wire
// contract (see endian package doc).
var wireOrder = endian.LittleEndian()

// magic identifies an archive blob; it is not part of the core chunk codec's
// wire contract, only this package's bundling format.
const magic = uint32(0x4f4d4348) // "OMCH"

// Pack builds a blob holding a variable's full encoded output: the
// concatenated chunk payload stream and its compressed LUT, wrapped with a
// secondary general-purpose
// compressor and an xxHash64 integrity checksum over the uncompressed
// payload.
//
// Layout: magic(4) | kind(1) | checksum(8) | chunkStreamLen(8) | lutLen(8) |
// compress(chunkStream || lut).
func Pack(kind Kind, chunkStream, lut []byte) ([]byte, error) {
	codec, err := CreateCodec(kind)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(chunkStream)+len(lut))
	payload = append(payload, chunkStream...)
	payload = append(payload, lut...)

	checksum := xxhash.Sum64(payload)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("archive: compress: %w", err)
	}

	out := make([]byte, 0, 29+len(compressed))
	var hdr [29]byte
	wireOrder.PutUint32(hdr[0:4], magic)
	hdr[4] = byte(kind)
	wireOrder.PutUint64(hdr[5:13], checksum)
	wireOrder.PutUint64(hdr[13:21], uint64(len(chunkStream))) //nolint:gosec
	wireOrder.PutUint64(hdr[21:29], uint64(len(lut)))         //nolint:gosec
	out = append(out, hdr[:]...)
	out = append(out, compressed...)

	return out, nil
}

// Unpack reverses Pack, validating the checksum and returning the chunk
// stream and LUT slices.
func Unpack(blob []byte) (chunkStream, lut []byte, err error) {
	if len(blob) < 29 {
		return nil, nil, fmt.Errorf("archive: blob too short: %d bytes", len(blob))
	}
	if wireOrder.Uint32(blob[0:4]) != magic {
		return nil, nil, fmt.Errorf("archive: bad magic")
	}

	kind := Kind(blob[4])
	checksum := wireOrder.Uint64(blob[5:13])
	chunkStreamLen := wireOrder.Uint64(blob[13:21])
	lutLen := wireOrder.Uint64(blob[21:29])

	codec, err := CreateCodec(kind)
	if err != nil {
		return nil, nil, err
	}

	payload, err := codec.Decompress(blob[29:])
	if err != nil {
		return nil, nil, fmt.Errorf("archive: decompress: %w", err)
	}
	if uint64(len(payload)) != chunkStreamLen+lutLen {
		return nil, nil, fmt.Errorf("archive: payload length mismatch: got %d, want %d",
			len(payload), chunkStreamLen+lutLen)
	}
	if xxhash.Sum64(payload) != checksum {
		return nil, nil, fmt.Errorf("archive: checksum mismatch")
	}

	return payload[:chunkStreamLen], payload[chunkStreamLen:], nil
}
