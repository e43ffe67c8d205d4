package filter

import "encoding/binary"

// XOR2DEncode32 replaces buf[r][c] with buf[r][c]^buf[r-1][c] for every row
// r >= 1, operating on the raw 32-bit IEEE-754 bit pattern of each element
// (i.e. float32 values reinterpreted as uint32). XOR is its own inverse, so
// XOR2DDecode32 performs the identical row-wise operation; only the
// traversal order differs, since encode must read an original predecessor
// row and decode must read an already-reconstructed one.
func XOR2DEncode32(rows, cols int, buf []byte) {
	for r := rows - 1; r >= 1; r-- {
		rowOff := r * cols * 4
		prevOff := (r - 1) * cols * 4
		for c := 0; c < cols; c++ {
			cur := binary.LittleEndian.Uint32(buf[rowOff+c*4:])
			prev := binary.LittleEndian.Uint32(buf[prevOff+c*4:])
			binary.LittleEndian.PutUint32(buf[rowOff+c*4:], cur^prev)
		}
	}
}

// XOR2DDecode32 inverts XOR2DEncode32.
func XOR2DDecode32(rows, cols int, buf []byte) {
	for r := 1; r < rows; r++ {
		rowOff := r * cols * 4
		prevOff := (r - 1) * cols * 4
		for c := 0; c < cols; c++ {
			cur := binary.LittleEndian.Uint32(buf[rowOff+c*4:])
			prev := binary.LittleEndian.Uint32(buf[prevOff+c*4:])
			binary.LittleEndian.PutUint32(buf[rowOff+c*4:], cur^prev)
		}
	}
}

// XOR2DEncode64 is XOR2DEncode32 for 64-bit IEEE-754 bit patterns
// (float64 values reinterpreted as uint64).
func XOR2DEncode64(rows, cols int, buf []byte) {
	for r := rows - 1; r >= 1; r-- {
		rowOff := r * cols * 8
		prevOff := (r - 1) * cols * 8
		for c := 0; c < cols; c++ {
			cur := binary.LittleEndian.Uint64(buf[rowOff+c*8:])
			prev := binary.LittleEndian.Uint64(buf[prevOff+c*8:])
			binary.LittleEndian.PutUint64(buf[rowOff+c*8:], cur^prev)
		}
	}
}

// XOR2DDecode64 inverts XOR2DEncode64.
func XOR2DDecode64(rows, cols int, buf []byte) {
	for r := 1; r < rows; r++ {
		rowOff := r * cols * 8
		prevOff := (r - 1) * cols * 8
		for c := 0; c < cols; c++ {
			cur := binary.LittleEndian.Uint64(buf[rowOff+c*8:])
			prev := binary.LittleEndian.Uint64(buf[prevOff+c*8:])
			binary.LittleEndian.PutUint64(buf[rowOff+c*8:], cur^prev)
		}
	}
}
