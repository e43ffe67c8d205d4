// Package errs defines the sentinel errors returned by the chunk codec.
//
// Callers should use errors.Is against these sentinels rather than comparing
// error strings, since the codec wraps them with fmt.Errorf("%w: ...") to add
// call-specific context.
package errs

import "errors"

var (
	// ErrInvalidCompressionType is returned when an encoder or decoder is
	// constructed with a CompressionMode value that has no registered codec.
	ErrInvalidCompressionType = errors.New("chunkcodec: invalid compression type")

	// ErrInvalidDataType is returned when a data type is incompatible with the
	// requested compression mode, e.g. requesting PforDelta2D16 for anything
	// other than float32.
	ErrInvalidDataType = errors.New("chunkcodec: invalid data type")

	// ErrInvalidLutChunkLength is returned when the configured LUT group size
	// is zero, negative, or larger than chunkenc.MaxLUTElements.
	ErrInvalidLutChunkLength = errors.New("chunkcodec: invalid LUT chunk length")

	// ErrOutOfBoundRead is returned by CompressChunk when the requested
	// hyper-rectangle would read past the source array's bounds. No output
	// bytes are written before this error is returned.
	ErrOutOfBoundRead = errors.New("chunkcodec: out of bound read")

	// ErrDimensionMismatch is returned when dimension-sized slices passed to
	// the encoder or a call (dimensions, chunks, arrayCount, ...) disagree in
	// length with the configured dimension count.
	ErrDimensionMismatch = errors.New("chunkcodec: dimension count mismatch")

	// ErrInvalidShape is returned when a chunk size is below one, or when a
	// LUT reader is built for an empty table. Dimension sizes are not checked.
	ErrInvalidShape = errors.New("chunkcodec: invalid shape")

	// ErrBufferTooSmall is returned when a caller-supplied scratch or output
	// buffer is smaller than the size the codec requires.
	ErrBufferTooSmall = errors.New("chunkcodec: buffer too small")

	// ErrChunkIndexOutOfRange is returned by the LUT reader when a group or
	// offset index lies outside the table.
	ErrChunkIndexOutOfRange = errors.New("chunkcodec: chunk index out of range")

	// ErrTruncatedPayload is returned by the LUT reader when a compressed LUT
	// payload does not divide evenly into its group count.
	ErrTruncatedPayload = errors.New("chunkcodec: truncated payload")
)
