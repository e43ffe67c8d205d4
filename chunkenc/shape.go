package chunkenc

// CountChunks returns C, the total number of chunks covering Dims under
// row-major chunking: the product of ceil(dims[i]/chunks[i]) over all axes.
func (c *Config) CountChunks() int {
	n := 1
	for _, nc := range c.nChunks {
		n *= nc
	}

	return n
}

// CountChunksInArray returns the number of chunks needed to cover a
// sub-array of shape arrayCount, used to size a partial-write LUT range.
func (c *Config) CountChunksInArray(arrayCount []int) int {
	n := 1
	for i, ac := range arrayCount {
		n *= divideRoundedUp(ac, c.chunks[i])
	}

	return n
}

// ChunkBufferSize returns the byte size of the scratch buffer
// CompressChunk needs for one full chunk: the product of the chunk shape
// times the compressed element width.
func (c *Config) ChunkBufferSize() int {
	l := 1
	for _, n := range c.chunks {
		l *= n
	}

	return l * c.bytesPerElementCompressed
}

// CompressedChunkBufferSize returns the worst-case number of bytes the
// entropy encoder can write for one chunk: ceil(L/256) + (L+32) times the
// compressed element width, where L is the full (non-edge) chunk volume.
// This accounts for the PFOR16 entropy layer's block padding and exception
// patch table.
func (c *Config) CompressedChunkBufferSize() int {
	l := 1
	for _, n := range c.chunks {
		l *= n
	}

	return divideRoundedUp(l, 256) + (l+32)*c.bytesPerElementCompressed
}
