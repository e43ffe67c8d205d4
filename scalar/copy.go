// Package scalar implements the per-element conversion routines used while
// gathering a chunk: identity copies of 1/2/4/8-byte scalars, and the lossy
// float32<->int16 conversions used by the PforDelta2D16 compression modes.
//
// Every function in this package has the signature
//
//	func(dst, src []byte, length int, scale, offset float32)
//
// matching the gather loop's (length, scale, offset, src, dst) callback
// shape: length is an element count, and dst/src must each hold at least
// length elements at their respective widths starting at index 0.
package scalar

// CopyFunc converts length source elements into dst, applying scale/offset
// where the conversion is lossy. Implementations never read or write beyond
// length elements.
type CopyFunc func(dst, src []byte, length int, scale, offset float32)

// Copy8 copies length 1-byte elements verbatim. scale and offset are unused.
func Copy8(dst, src []byte, length int, _, _ float32) {
	copy(dst[:length], src[:length])
}

// Copy16 copies length 2-byte elements verbatim. scale and offset are unused.
func Copy16(dst, src []byte, length int, _, _ float32) {
	n := length * 2
	copy(dst[:n], src[:n])
}

// Copy32 copies length 4-byte elements verbatim. scale and offset are unused.
func Copy32(dst, src []byte, length int, _, _ float32) {
	n := length * 4
	copy(dst[:n], src[:n])
}

// Copy64 copies length 8-byte elements verbatim. scale and offset are unused.
//
// The reference C implementation aliases this case to its 32-bit copy
// function, which truncates every 8-byte element to 4 bytes. That is a bug
// in the reference, not a format requirement: this port uses a real 8-byte
// copy so int64/uint64/float64 chunk-buffer round trips are correct.
func Copy64(dst, src []byte, length int, _, _ float32) {
	n := length * 8
	copy(dst[:n], src[:n])
}

// WidthFor returns bytesPerElement unchanged: each of the four identity copy
// functions moves exactly its element width per element.
func WidthFor(bytesPerElement int) int {
	return bytesPerElement
}
