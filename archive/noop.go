package archive

// NoOpCompressor bypasses compression entirely, for blobs that are already
// dense entropy-coded chunk payloads where a second compression pass would
// only add CPU time.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

func NewNoOpCompressor() NoOpCompressor { return NoOpCompressor{} }

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
