// Package filter implements the in-place 2-D prediction filters applied to
// a packed chunk buffer before entropy coding: row-wise delta on 16-bit
// values (used by the PforDelta2D16 modes) and row-wise XOR on IEEE-754 bit
// patterns (used by FpxXor2D).
//
// Every filter treats the chunk buffer as a dense row-major view of shape
// (rows, cols), where cols is the chunk's innermost dimension length and
// rows is the remaining element count. Filters operate in place and their
// Decode is the exact inverse of Encode.
package filter

import "encoding/binary"

// Delta2DEncode replaces buf[r][c] with buf[r][c]-buf[r-1][c] for every row
// r >= 1, reading and writing int16 values. Row 0 is left untouched, which
// anchors the prefix sum performed by Delta2DDecode.
//
// Rows are processed from the last row backward so that each subtraction
// reads an as-yet-unmodified predecessor row.
func Delta2DEncode(rows, cols int, buf []byte) {
	for r := rows - 1; r >= 1; r-- {
		rowOff := r * cols * 2
		prevOff := (r - 1) * cols * 2
		for c := 0; c < cols; c++ {
			cur := int16(binary.LittleEndian.Uint16(buf[rowOff+c*2:]))   //nolint:gosec
			prev := int16(binary.LittleEndian.Uint16(buf[prevOff+c*2:])) //nolint:gosec
			binary.LittleEndian.PutUint16(buf[rowOff+c*2:], uint16(cur-prev))
		}
	}
}

// Delta2DDecode inverts Delta2DEncode via a row-wise prefix sum, processing
// rows from the first delta row forward so that each addition reads an
// already-reconstructed predecessor row.
func Delta2DDecode(rows, cols int, buf []byte) {
	for r := 1; r < rows; r++ {
		rowOff := r * cols * 2
		prevOff := (r - 1) * cols * 2
		for c := 0; c < cols; c++ {
			cur := int16(binary.LittleEndian.Uint16(buf[rowOff+c*2:]))   //nolint:gosec
			prev := int16(binary.LittleEndian.Uint16(buf[prevOff+c*2:])) //nolint:gosec
			binary.LittleEndian.PutUint16(buf[rowOff+c*2:], uint16(cur+prev))
		}
	}
}
