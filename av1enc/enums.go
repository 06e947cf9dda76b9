// Package av1enc is the syntax driver: it walks the partition tree of a
// padded frame, emits per-block mode syntax, and drives the residual
// pipeline and coefficient coder for each 8x8 luma block (and its
// subsampled chroma blocks), producing one tile's entropy-coded payload
// plus the raw-bit sequence and frame headers that frame it.
package av1enc

// Partition symbol values, in AV1's PARTITION_TYPES order.
const (
	partitionNone = iota
	partitionHorz
	partitionVert
	partitionSplit
	partitionHorzA
	partitionHorzB
	partitionVertA
	partitionVertB
	partitionHorz4
	partitionVert4
)

// dcPred is the only intra prediction mode this encoder ever selects, for
// both y_mode and uv_mode.
const dcPred = 0

// planeLuma and planeChroma are the two plane_type buckets the coefficient
// CDFs are indexed by.
const (
	planeLuma = 0
	planeChroma = 1
)
