// Package pool provides reusable scratch buffers so that repeated
// CompressChunk/DecompressChunk and LUT calls do not allocate on every call.
package pool

import "sync"

// Default and ceiling sizes for pooled chunk scratch buffers. Chunks are
// typically a few KiB to a few hundred KiB; anything larger than the
// threshold is discarded rather than retained, to avoid pinning oversized
// buffers in the pool after a one-off large chunk.
const (
	ChunkBufferDefaultSize  = 1024 * 64  // 64KiB
	ChunkBufferMaxThreshold = 1024 * 512 // 512KiB
)

// ByteBuffer is a growable byte slice wrapper, reused across pool checkouts.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// ExtendOrGrow extends the buffer by n bytes, growing the backing array if
// the existing capacity is insufficient.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	need := len(bb.B) + n
	if cap(bb.B) >= need {
		bb.B = bb.B[:need]
		return
	}

	newBuf := make([]byte, len(bb.B), need)
	copy(newBuf, bb.B)
	bb.B = newBuf[:need]
}

// BufferPool pools ByteBuffers of a given default size.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool creates a pool whose buffers start at defaultSize and are
// discarded (not retained) once they grow past maxThreshold.
func NewBufferPool(defaultSize, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a reset ByteBuffer from the pool.
func (p *BufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool, discarding it instead if it has
// grown beyond the pool's max threshold.
func (p *BufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var chunkBufferPool = NewBufferPool(ChunkBufferDefaultSize, ChunkBufferMaxThreshold)

// GetChunkBuffer retrieves a ByteBuffer from the shared chunk scratch pool.
func GetChunkBuffer() *ByteBuffer { return chunkBufferPool.Get() }

// PutChunkBuffer returns a ByteBuffer to the shared chunk scratch pool.
func PutChunkBuffer(bb *ByteBuffer) { chunkBufferPool.Put(bb) }
