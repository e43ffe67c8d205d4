package chunkenc

import "fmt"

// DecompressChunk reverses CompressChunk: it entropy-decodes payload into
// chunkBuffer, inverts the 2-D filter in place, then scatters the result
// into array's hyper-rectangle at the position chunkIndex addresses.
//
// chunkBuffer must be at least ChunkBufferSize() bytes. array, the
// hyper-rectangle parameters and chunkIndex/chunkIndexOffsetInThisArray
// carry the same meaning as in CompressChunk.
func (c *Config) DecompressChunk(
	array []byte,
	arrayDimensions, arrayOffset, arrayCount []int,
	chunkIndex, chunkIndexOffsetInThisArray int,
	payload, chunkBuffer []byte,
) error {
	lengthInChunk, lengthLast, _, _, err := chunkCoordinateExtent(
		c, arrayDimensions, arrayOffset, arrayCount, chunkIndex, chunkIndexOffsetInThisArray)
	if err != nil {
		return err
	}

	packed := chunkBuffer[:lengthInChunk*c.bytesPerElementCompressed]
	if err := c.entropy.Decode(packed, payload, lengthInChunk); err != nil {
		return fmt.Errorf("chunkenc: entropy decode chunk %d: %w", chunkIndex, err)
	}

	rows := lengthInChunk / lengthLast
	c.filterDe(rows, lengthLast, packed)

	return scatterChunk(c, array, arrayDimensions, arrayOffset, arrayCount, chunkIndex, chunkIndexOffsetInThisArray, lengthInChunk, packed)
}
