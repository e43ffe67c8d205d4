// Package entropy wraps the codec's two sealed, byte-in/byte-out entropy
// coders: a 16-bit zig-zag PFOR coder for the lossy int16 chunk buffers
// (backed by the FastPFOR block codec), and an FPX-style leading/trailing
// zero run compactor for the lossless XOR-filtered float buffers.
//
// The PFOR coders (16-bit here, 64-bit delta in pfor64.go) frame their
// output as a sequence of independently-sized blocks, each prefixed with a
// 4-byte little-endian length, so a decoder can walk the concatenated stream
// without needing to reconstruct an upstream codec's private block header
// layout. The FPX coder writes a single unframed bit stream.
package entropy

import (
	"encoding/binary"
	"fmt"

	fastpfor "github.com/Akron/fastpfor-go"

	"github.com/open-meteo/go-omchunk/internal/pool"
)

// PFOR16BlockSize is the number of elements FastPFOR packs per block.
const PFOR16BlockSize = fastpfor.BlockSize

const lenPrefixSize = 4

// EncodePFOR16 entropy-codes count int16 values (stored as little-endian
// pairs in src) using FastPFOR blocks of up to PFOR16BlockSize elements. It
// zig-zag encodes each value itself; the caller is not expected to have
// zig-zagged already. It writes the framed block stream into dst and
// returns the number of bytes written.
func EncodePFOR16(dst, src []byte, count int) (int, error) {
	out := dst[:0]
	values, put := pool.GetUint32Slice(PFOR16BlockSize)
	defer put()
	values = values[:0]
	var block []byte

	for start := 0; start < count; start += PFOR16BlockSize {
		end := min(start+PFOR16BlockSize, count)

		values = values[:0]
		for i := start; i < end; i++ {
			v := int16(binary.LittleEndian.Uint16(src[i*2:])) //nolint:gosec
			values = append(values, zigzagEncode16(v))
		}

		block = fastpfor.Pack(block[:0], values)
		out = appendFramed(out, block)
	}

	return finishInto(dst, out)
}

// DecodePFOR16 reverses EncodePFOR16, reconstructing count int16 values
// from src into dst as little-endian pairs.
func DecodePFOR16(dst, src []byte, count int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("entropy: corrupt PFOR16 stream: %v", r)
		}
	}()

	values, put := pool.GetUint32Slice(PFOR16BlockSize)
	defer put()
	values = values[:0]
	pos := 0
	written := 0
	for written < count {
		var block []byte
		block, pos, err = readFramed(src, pos)
		if err != nil {
			return err
		}

		values = fastpfor.Unpack(values[:0], block)
		for _, zz := range values {
			if written >= count {
				break
			}
			binary.LittleEndian.PutUint16(dst[written*2:], uint16(zigzagDecode16(zz))) //nolint:gosec
			written++
		}
	}

	return nil
}

func zigzagEncode16(v int16) uint32 {
	x := int32(v)
	return uint32((x << 1) ^ (x >> 31)) //nolint:gosec
}

func zigzagDecode16(u uint32) int16 {
	x := int32(u>>1) ^ -int32(u&1) //nolint:gosec
	return int16(x)                //nolint:gosec
}

func appendFramed(out, block []byte) []byte {
	var lenBuf [lenPrefixSize]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(block))) //nolint:gosec
	out = append(out, lenBuf[:]...)
	out = append(out, block...)

	return out
}

func readFramed(src []byte, pos int) ([]byte, int, error) {
	if pos+lenPrefixSize > len(src) {
		return nil, 0, fmt.Errorf("entropy: truncated block length at offset %d", pos)
	}
	blockLen := int(binary.LittleEndian.Uint32(src[pos:]))
	pos += lenPrefixSize
	if blockLen < 0 || pos+blockLen > len(src) {
		return nil, 0, fmt.Errorf("entropy: truncated block body at offset %d (need %d bytes)", pos, blockLen)
	}

	return src[pos : pos+blockLen], pos + blockLen, nil
}

// finishInto copies out into dst, failing if dst is too small to hold it.
func finishInto(dst, out []byte) (int, error) {
	if len(out) > len(dst) {
		return 0, fmt.Errorf("entropy: encoded size %d exceeds destination buffer of %d bytes", len(out), len(dst))
	}

	return copy(dst, out), nil
}
