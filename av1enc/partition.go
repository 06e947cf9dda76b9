package av1enc

import (
	"github.com/cocosip/go-tinyavif/cdf"
	"github.com/cocosip/go-tinyavif/entropy"
)

// partitionCdf returns the 10-ary partition CDF for block size b (64, 32
// or 16) at the given above/left context.
func partitionCdf(b, context int) []uint16 {
	switch b {
	case 64:
		return cdf.Partition64x64[context][:]
	case 32:
		return cdf.Partition32x32[context][:]
	case 16:
		return cdf.Partition16x16[context][:]
	default:
		panic("av1enc: no 10-ary partition CDF for this block size")
	}
}

// gatherVertAlike sums the probability mass of every partition type that
// can only arise when a vertical split is in play, for the derived binary
// HORZ-vs-SPLIT CDF used when the bottom edge of the frame runs through
// this block but the right edge does not.
func gatherVertAlike(full []uint16) uint16 {
	sum := 0
	for _, s := range []int{partitionVert, partitionSplit, partitionHorzA, partitionVertA, partitionVertB, partitionVert4} {
		sum += int(entropy.GetProb(s, full))
	}
	return uint16(sum)
}

// gatherHorzAlike is gatherVertAlike's mirror image, used for the derived
// binary VERT-vs-SPLIT CDF.
func gatherHorzAlike(full []uint16) uint16 {
	sum := 0
	for _, s := range []int{partitionHorz, partitionSplit, partitionVertA, partitionHorzA, partitionHorzB, partitionHorz4} {
		sum += int(entropy.GetProb(s, full))
	}
	return uint16(sum)
}

// encodePartition recursively descends from size b at luma pixel position
// (y0, x0) down to 8x8 blocks, coding a partition symbol at every size
// above 8 and a block at every 8x8 leaf. This encoder never selects
// anything but the finest partition, so the only real decision at each
// level is which of the four partition CDF shapes bounds-clipping forces:
// the full 10-ary CDF when all four sub-quadrants are in-bounds, one of
// two derived binary CDFs when exactly two are, or no symbol at all when
// only the top-left sub-quadrant survives.
func (t *TileEncoder) encodePartition(y0, x0, b int) {
	if b == 8 {
		// Neighbor blocks are never smaller than 8x8 here, so the 8x8
		// partition context is always 0.
		t.bw.WriteSymbol(partitionNone, cdf.Partition8x8[0][:])
		t.encodeBlock(y0, x0)
		return
	}

	paddedHeight := t.source.Y().Height()
	paddedWidth := t.source.Y().Width()
	half := b / 2

	haveRows := y0+half < paddedHeight
	haveCols := x0+half < paddedWidth

	context := 2*boolToInt(y0 > 0) + boolToInt(x0 > 0)

	// The two partial-quadrant cases below code a 2-symbol alphabet
	// {non-split, SPLIT}; SPLIT is always symbol 1 in that alphabet, not
	// the 10-ary PARTITION_SPLIT value used in the full-CDF branch above.
	const binarySplit = 1

	if haveRows && haveCols {
		full := partitionCdf(b, context)
		t.bw.WriteSymbol(partitionSplit, full)
	} else if haveCols {
		// Bottom edge runs through this block, right edge does not: choose
		// between a single HORZ-shaped block covering the in-bounds top
		// half and splitting further. Always split.
		full := partitionCdf(b, context)
		p := gatherVertAlike(full)
		binCdf := []uint16{uint16(32768 - uint32(p))}
		t.bw.WriteSymbol(binarySplit, binCdf)
	} else if haveRows {
		// Right edge runs through this block, bottom edge does not: choose
		// between a single VERT-shaped block and splitting further. Always
		// split.
		full := partitionCdf(b, context)
		p := gatherHorzAlike(full)
		binCdf := []uint16{uint16(32768 - uint32(p))}
		t.bw.WriteSymbol(binarySplit, binCdf)
	}
	// else: neither sub-quadrant row nor column survives past this block;
	// the partition is forced SPLIT and no symbol is coded for it.

	for _, child := range partitionChildren(y0, x0, half, haveRows, haveCols) {
		t.encodePartition(child[0], child[1], half)
	}
}

// partitionChildren lists, in raster order, the sub-quadrant origins that
// fall (at least partially) inside the padded frame.
func partitionChildren(y0, x0, half int, haveRows, haveCols bool) [][2]int {
	switch {
	case haveRows && haveCols:
		return [][2]int{{y0, x0}, {y0, x0 + half}, {y0 + half, x0}, {y0 + half, x0 + half}}
	case haveRows:
		return [][2]int{{y0, x0}, {y0 + half, x0}}
	case haveCols:
		return [][2]int{{y0, x0}, {y0, x0 + half}}
	default:
		return [][2]int{{y0, x0}}
	}
}
