package entropy

import (
	"fmt"

	fastpfor "github.com/Akron/fastpfor-go"

	"github.com/open-meteo/go-omchunk/internal/pool"
)

// EncodePFOR64Delta entropy-codes a monotonically non-decreasing uint64
// sequence (the LUT's group-relative byte offsets) using FastPFOR's delta
// block codec applied independently to the low and high 32-bit halves of
// each value. Splitting into two lanes keeps every packed word inside
// FastPFOR's native uint32 domain while still round-tripping the full
// 64-bit range exactly: each lane is losslessly delta-coded on its own, so
// recombining the two decoded lanes reproduces the original 64-bit values
// regardless of how carries propagated between them.
//
// It writes the framed stream into dst and returns the number of bytes
// written.
//
// fastpfor.PackDelta panics when a lane's consecutive delta falls outside
// the signed int32 range it can zigzag-encode. That can happen on the low
// lane here even though the full uint64 sequence is non-decreasing: a
// carry into the high lane can make the low 32 bits wrap from near
// 0xFFFFFFFF down to near 0, producing a large negative delta on that
// lane alone. Guard against it the same way DecodePFOR64Delta guards
// against a corrupt stream.
func EncodePFOR64Delta(dst []byte, values []uint64) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("entropy: PFOR64 lane delta out of range: %v", r)
		}
	}()

	count := len(values)
	lows, putLows := pool.GetUint32Slice(count)
	defer putLows()
	highs, putHighs := pool.GetUint32Slice(count)
	defer putHighs()
	for i, v := range values {
		lows[i] = uint32(v)        //nolint:gosec
		highs[i] = uint32(v >> 32) //nolint:gosec
	}

	out := dst[:0]
	scratch, putScratch := pool.GetUint32Slice(PFOR16BlockSize)
	defer putScratch()
	var block []byte

	encodeLane := func(lane []uint32) {
		for start := 0; start < len(lane); start += PFOR16BlockSize {
			end := min(start+PFOR16BlockSize, len(lane))
			block = fastpfor.PackDelta(block[:0], lane[start:end], scratch)
			out = appendFramed(out, block)
		}
	}
	encodeLane(lows)
	encodeLane(highs)

	return finishInto(dst, out)
}

// DecodePFOR64Delta reverses EncodePFOR64Delta, reconstructing count uint64
// values from src into dst.
func DecodePFOR64Delta(dst []uint64, src []byte, count int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("entropy: corrupt PFOR64 stream: %v", r)
		}
	}()

	lows, putLows := pool.GetUint32Slice(count)
	defer putLows()
	highs, putHighs := pool.GetUint32Slice(count)
	defer putHighs()
	scratch, putScratch := pool.GetUint32Slice(PFOR16BlockSize)
	defer putScratch()
	pos := 0

	decodeLane := func(lane []uint32) error {
		written := 0
		decoded := make([]uint32, 0, PFOR16BlockSize)
		for written < len(lane) {
			var block []byte
			var ferr error
			block, pos, ferr = readFramed(src, pos)
			if ferr != nil {
				return ferr
			}
			decoded = fastpfor.UnpackDelta(decoded[:0], block, scratch)
			n := copy(lane[written:], decoded)
			written += n
		}

		return nil
	}

	if err = decodeLane(lows); err != nil {
		return err
	}
	if err = decodeLane(highs); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		dst[i] = uint64(highs[i])<<32 | uint64(lows[i])
	}

	return nil
}
