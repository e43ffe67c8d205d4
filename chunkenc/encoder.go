package chunkenc

import "fmt"

// CompressChunk packs, filters and entropy-codes the chunk addressed by
// chunkIndex.
//
// array is the full source buffer, described by arrayDimensions; the
// hyper-rectangle (arrayOffset, arrayCount) within it is what this call may
// read. chunkIndexOffsetInThisArray is the chunk index, in the same
// mixed-radix base as chunkIndex, of the sub-array's origin — it lets a
// caller writing a partial array still address chunks by their position in
// the full grid.
//
// chunkBuffer must be at least ChunkBufferSize() bytes; out must be at
// least CompressedChunkBufferSize() bytes. CompressChunk returns the number
// of bytes written to out.
func (c *Config) CompressChunk(
	out, chunkBuffer []byte,
	array []byte,
	arrayDimensions, arrayOffset, arrayCount []int,
	chunkIndex, chunkIndexOffsetInThisArray int,
) (int, error) {
	lengthInChunk, lengthLast, err := gatherChunk(
		c, array, arrayDimensions, arrayOffset, arrayCount,
		chunkIndex, chunkIndexOffsetInThisArray, chunkBuffer,
	)
	if err != nil {
		return 0, err
	}

	packed := chunkBuffer[:lengthInChunk*c.bytesPerElementCompressed]
	rows := lengthInChunk / lengthLast
	c.filterEn(rows, lengthLast, packed)

	n, err := c.entropy.Encode(out, packed, lengthInChunk)
	if err != nil {
		return 0, fmt.Errorf("chunkenc: entropy encode chunk %d: %w", chunkIndex, err)
	}

	return n, nil
}
