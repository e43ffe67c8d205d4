package pool

import "sync"

// Typed slice pools used for transient scratch space in the PFOR block
// codecs (delta scratch, unpacked lane buffers).
var (
	uint32SlicePool = sync.Pool{New: func() any { return &[]uint32{} }}
	uint64SlicePool = sync.Pool{New: func() any { return &[]uint64{} }}
)

// GetUint32Slice retrieves a uint32 slice of exactly size length from the
// pool, allocating a new one if the pooled slice is too small. The returned
// cleanup function must be called (typically with defer) to return it.
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	s := (*ptr)[:0]
	if cap(s) < size {
		s = make([]uint32, size)
	} else {
		s = s[:size]
	}
	*ptr = s

	return s, func() { uint32SlicePool.Put(ptr) }
}

// GetUint64Slice retrieves a uint64 slice of exactly size length from the
// pool, allocating a new one if the pooled slice is too small. The returned
// cleanup function must be called (typically with defer) to return it.
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	s := (*ptr)[:0]
	if cap(s) < size {
		s = make([]uint64, size)
	} else {
		s = s[:size]
	}
	*ptr = s

	return s, func() { uint64SlicePool.Put(ptr) }
}
