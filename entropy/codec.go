package entropy

// EncodeFunc entropy-codes count elements from src into dst and returns the
// number of bytes written, matching the chunk pipeline's compress_callback
// shape. Pair.Decode is its inverse.
type EncodeFunc func(dst, src []byte, count int) (int, error)

// Pair is the encode/decode pair used by a compression mode's entropy
// stage: PFOR16 for the PFOR16 modes' int16 buffer, FPX32 or FPX64 for
// FpxXor2D's float buffer. chunkenc's configuration picks one of these
// values from its data type and compression mode.
type Pair struct {
	Encode EncodeFunc
	Decode func(dst, src []byte, count int) error
}

// PFOR16 is the entropy stage for PforDelta2D16 and PforDelta2D16Log.
var PFOR16 = Pair{Encode: EncodePFOR16, Decode: DecodePFOR16}

// FPX32 is the entropy stage for FpxXor2D over float32 elements.
var FPX32 = Pair{
	Encode: EncodeFPX32,
	Decode: func(dst, src []byte, count int) error {
		DecodeFPX32(dst, src, count)
		return nil
	},
}

// FPX64 is the entropy stage for FpxXor2D over float64 elements.
var FPX64 = Pair{
	Encode: EncodeFPX64,
	Decode: func(dst, src []byte, count int) error {
		DecodeFPX64(dst, src, count)
		return nil
	},
}
