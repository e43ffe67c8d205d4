package archive

// ZstdCompressor trades compression speed for ratio, for archive blobs
// headed to cold storage where decompression is infrequent.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

func NewZstdCompressor() ZstdCompressor { return ZstdCompressor{} }
