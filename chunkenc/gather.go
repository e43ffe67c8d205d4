package chunkenc

import (
	"fmt"

	"github.com/open-meteo/go-omchunk/errs"
)

// chunkCoordinateExtent decodes chunkIndex as a mixed-radix number over the
// per-axis chunk counts, axis 0 most significant, and returns the chunk's
// packed element volume (lengthInChunk), its innermost axis length
// (lengthLast, the filter stage's column count) and the flat source-array
// index the gather/scatter walk must start reading from.
//
// This is the first half of the reference gather loop: it needs no access
// to array data, only shape, so both CompressChunk and DecompressChunk call
// it before they have any bytes to move.
func chunkCoordinateExtent(
	cfg *Config,
	arrayDimensions, arrayOffset, arrayCount []int,
	chunkIndex, chunkIndexOffsetInThisArray int,
) (lengthInChunk, lengthLast, startReadCoordinate, startLinearReadCount int, err error) {
	d := len(cfg.dims)
	if len(arrayDimensions) != d || len(arrayOffset) != d || len(arrayCount) != d {
		return 0, 0, 0, 0, fmt.Errorf("%w: array shape slices must each have %d axes", errs.ErrDimensionMismatch, d)
	}

	rollingMultiply := 1
	rollingMultiplyChunkLength := 1
	rollingMultiplyTargetCube := 1
	readCoordinate := 0
	linearReadCount := 1
	linearRead := true

	for i := d - 1; i >= 0; i-- {
		nChunksInThisDimension := cfg.nChunks[i]
		c0 := (chunkIndex / rollingMultiply) % nChunksInThisDimension
		c0Offset := (chunkIndexOffsetInThisArray / rollingMultiply) % nChunksInThisDimension
		length0 := min((c0+1)*cfg.chunks[i], cfg.dims[i]) - c0*cfg.chunks[i]

		if i == d-1 {
			lengthLast = length0
		}

		readCoordinate += rollingMultiplyTargetCube * ((c0-c0Offset)*cfg.chunks[i] + arrayOffset[i])

		if length0 > arrayCount[i] || length0 > arrayDimensions[i] {
			return 0, 0, 0, 0, fmt.Errorf("%w: axis %d needs %d elements from the source hyper-rectangle",
				errs.ErrOutOfBoundRead, i, length0)
		}

		if i == d-1 && !(arrayCount[i] == length0 && arrayDimensions[i] == length0) {
			linearReadCount = length0
			linearRead = false
		}
		if linearRead && arrayCount[i] == length0 && arrayDimensions[i] == length0 {
			linearReadCount *= length0
		} else {
			linearRead = false
		}

		rollingMultiply *= nChunksInThisDimension
		rollingMultiplyTargetCube *= arrayDimensions[i]
		rollingMultiplyChunkLength *= length0
	}

	return rollingMultiplyChunkLength, lengthLast, readCoordinate, linearReadCount, nil
}

// walkChunkRuns enumerates the exact sequence of (readCoordinate,
// writeCoordinate, runLength) triples the reference encoder's gather loop
// visits for one chunk, starting from the coordinates chunkCoordinateExtent
// computed. It is shared by gatherChunk and scatterChunk; only the
// direction data moves between array and chunk buffer differs, which run
// implements.
//
// rollingMultiplyTargetCube tracks the stride of the axis currently being
// carried. linearRead/linearReadCount detect, from the innermost axis
// outward, how many axes are "fully covered and contiguous" so several rows
// can be folded into a single run call.
func walkChunkRuns(
	cfg *Config,
	arrayDimensions, arrayOffset, arrayCount []int,
	lengthInChunk, startReadCoordinate, startLinearReadCount int,
	run func(readCoordinate, writeCoordinate, linearReadCount int) error,
) error {
	d := len(cfg.dims)

	arrayTotalCount := 1
	for i := 0; i < d; i++ {
		arrayTotalCount *= arrayDimensions[i]
	}

	readCoordinate := startReadCoordinate
	writeCoordinate := 0
	linearReadCount := startLinearReadCount
	var linearRead bool

	for {
		if readCoordinate+linearReadCount > arrayTotalCount {
			return fmt.Errorf("%w: access of %d elements at array offset %d exceeds source array of %d elements",
				errs.ErrOutOfBoundRead, linearReadCount, readCoordinate, arrayTotalCount)
		}
		if writeCoordinate+linearReadCount > lengthInChunk {
			return fmt.Errorf("%w: access of %d elements at chunk offset %d exceeds chunk buffer of %d elements",
				errs.ErrOutOfBoundRead, linearReadCount, writeCoordinate, lengthInChunk)
		}

		if err := run(readCoordinate, writeCoordinate, linearReadCount); err != nil {
			return err
		}

		readCoordinate += linearReadCount - 1
		writeCoordinate += linearReadCount - 1
		writeCoordinate++

		rollingMultiplyTargetCube := 1
		linearRead = true
		linearReadCount = 1

		finished := false
		for i := d - 1; i >= 0; i-- {
			qPos := ((readCoordinate/rollingMultiplyTargetCube)%arrayDimensions[i] - arrayOffset[i]) / cfg.chunks[i]
			length0 := min((qPos+1)*cfg.chunks[i], arrayCount[i]) - qPos*cfg.chunks[i]
			readCoordinate += rollingMultiplyTargetCube

			if i == d-1 && !(arrayCount[i] == length0 && arrayDimensions[i] == length0) {
				linearReadCount = length0
				linearRead = false
			}
			if linearRead && arrayCount[i] == length0 && arrayDimensions[i] == length0 {
				linearReadCount *= length0
			} else {
				linearRead = false
			}

			q0 := ((readCoordinate/rollingMultiplyTargetCube)%arrayDimensions[i] - arrayOffset[i]) % cfg.chunks[i]
			if q0 != 0 && q0 != length0 {
				break
			}
			readCoordinate -= length0 * rollingMultiplyTargetCube
			rollingMultiplyTargetCube *= arrayDimensions[i]

			if i == 0 {
				finished = true
				break
			}
		}

		if finished {
			break
		}
	}

	return nil
}

// gatherChunk packs the chunk addressed by chunkIndex out of array into
// chunkBuffer, applying cfg's encode-direction scalar copy function.
func gatherChunk(
	cfg *Config,
	array []byte,
	arrayDimensions, arrayOffset, arrayCount []int,
	chunkIndex, chunkIndexOffsetInThisArray int,
	chunkBuffer []byte,
) (lengthInChunk, lengthLast int, err error) {
	lengthInChunk, lengthLast, startRead, startLinear, err := chunkCoordinateExtent(
		cfg, arrayDimensions, arrayOffset, arrayCount, chunkIndex, chunkIndexOffsetInThisArray)
	if err != nil {
		return 0, 0, err
	}

	bpe := cfg.bytesPerElement
	bpec := cfg.bytesPerElementCompressed

	err = walkChunkRuns(cfg, arrayDimensions, arrayOffset, arrayCount, lengthInChunk, startRead, startLinear,
		func(readCoordinate, writeCoordinate, linearReadCount int) error {
			cfg.copyFn(
				chunkBuffer[bpec*writeCoordinate:],
				array[bpe*readCoordinate:],
				linearReadCount,
				cfg.scale, cfg.offset,
			)

			return nil
		},
	)

	return lengthInChunk, lengthLast, err
}

// scatterChunk reverses gatherChunk: it writes the already-decoded,
// already-unfiltered chunkBuffer out into array's hyper-rectangle, applying
// cfg's decode-direction scalar copy function.
func scatterChunk(
	cfg *Config,
	array []byte,
	arrayDimensions, arrayOffset, arrayCount []int,
	chunkIndex, chunkIndexOffsetInThisArray int,
	lengthInChunk int,
	chunkBuffer []byte,
) error {
	_, _, startRead, startLinear, err := chunkCoordinateExtent(
		cfg, arrayDimensions, arrayOffset, arrayCount, chunkIndex, chunkIndexOffsetInThisArray)
	if err != nil {
		return err
	}

	bpe := cfg.bytesPerElement
	bpec := cfg.bytesPerElementCompressed

	return walkChunkRuns(cfg, arrayDimensions, arrayOffset, arrayCount, lengthInChunk, startRead, startLinear,
		func(readCoordinate, writeCoordinate, linearReadCount int) error {
			cfg.decodeCopyFn(
				array[bpe*readCoordinate:],
				chunkBuffer[bpec*writeCoordinate:],
				linearReadCount,
				cfg.scale, cfg.offset,
			)

			return nil
		},
	)
}
