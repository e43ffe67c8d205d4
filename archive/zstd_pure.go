package archive

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstd.Encoder/Decoder are pooled in mebo's compress package because that
// package sits on the per-chunk hot path. Archive.Pack/Unpack run once per
// variable, so the pool's only purpose there — amortizing encoder/decoder
// construction across many calls — doesn't apply here; a fresh encoder or
// decoder per call keeps the lifetime obvious and avoids a leaked pool entry
// after a construction error.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		return nil, fmt.Errorf("archive: create zstd encoder: %w", err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, nil), nil
}

func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		return nil, fmt.Errorf("archive: create zstd decoder: %w", err)
	}
	defer decoder.Close()

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("archive: zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
