package txfm

import "github.com/cocosip/go-tinyavif/array2d"

// txSizeIndex maps a square transform size to the index used by the shift
// and stage-count tables below (0 for 4x4, 1 for 8x8). This encoder only
// ever builds 4x4 or 8x8 transforms.
func txSizeIndex(n int) int {
	switch n {
	case 4:
		return 0
	case 8:
		return 1
	default:
		panic("txfm: unsupported transform size")
	}
}

// av1TxfmStages is the number of named stages (including the clamped
// combine stages idct8 indexes into) each transform size's butterfly
// network has.
var av1TxfmStages = [2]int{4, 6}

// av1TxfmFwdShift holds the {pre-column, post-column, post-row} Round2
// shifts applied around the forward transform's two passes, matching
// libaom's fwd_txfm2d_cfg shift tables for TX_4X4 and TX_8X8.
var av1TxfmFwdShift = [2][3]int{
	{2, 0, 0},
	{2, -1, 0},
}

// av1TxfmInvShift holds the {post-row, post-column} Round2 shifts applied
// around the inverse transform's two passes, matching libaom's
// inv_txfm_shift_ls table for TX_4X4 and TX_8X8.
var av1TxfmInvShift = [2][2]int{
	{0, -4},
	{-1, -4},
}

// av1TxfmInvStartRange seeds the inverse transform's per-stage clamp
// widths: for 8-bit content stage_range_row/col come to 14/14 bits for
// 4x4 and 15/14 bits for 8x8. The clamps only bite on coefficient magnitudes far beyond what
// a valid quantized block produces.
var av1TxfmInvStartRange = [2]int{5, 6}

const bitDepth = 8

// Forward2D computes the separable 2D forward DCT of an n x n residual
// block (n is 4 or 8) in place: a column pass (via transpose), preceded
// and followed by a Round2 shift, then a row pass followed by one, as
// av1TxfmFwdShift specifies.
func Forward2D(residual *array2d.Array2D[int32], n int) {
	if residual.Rows() != n || residual.Cols() != n {
		panic("txfm: Forward2D size mismatch")
	}
	idx := txSizeIndex(n)
	shift := av1TxfmFwdShift[idx]
	cosBit := 13 // both 4x4 and 8x8 forward transforms use 13-bit cospi precision

	fwd1D := fdct4
	if n == 8 {
		fwd1D = fdct8
	}

	transposed := residual.Transpose()
	for j := 0; j < n; j++ {
		col := transposed.Row(j)
		roundShiftArray(col, -shift[0])
		fwd1D(col, cosBit)
		roundShiftArray(col, -shift[1])
	}

	transposed.TransposeInto(residual)
	for i := 0; i < n; i++ {
		row := residual.Row(i)
		fwd1D(row, cosBit)
		roundShiftArray(row, -shift[2])
	}
}

// Inverse2D computes the separable 2D inverse DCT of an n x n coefficient
// block in place: a row pass, then a column pass (via transpose), each
// preceded by a stage-range clamp and followed by a Round2 shift.
func Inverse2D(coeffs *array2d.Array2D[int32], n int) {
	if coeffs.Rows() != n || coeffs.Cols() != n {
		panic("txfm: Inverse2D size mismatch")
	}
	idx := txSizeIndex(n)
	shift := av1TxfmInvShift[idx]
	stages := av1TxfmStages[idx]
	cosBit := 12 // all inverse transform sizes use 12-bit cospi precision
	startRange := av1TxfmInvStartRange[idx]

	stageRangeRow := make([]uint, stages)
	stageRangeCol := make([]uint, stages)
	for i := 0; i < stages; i++ {
		stageRangeRow[i] = uint(startRange + bitDepth + 1)
		stageRangeCol[i] = uint(startRange + shift[0] + bitDepth + 1)
	}

	inv1D := idct4
	if n == 8 {
		inv1D = idct8
	}

	for i := 0; i < n; i++ {
		row := coeffs.Row(i)
		clampArray(row, bitDepth+8)
		inv1D(row, cosBit, stageRangeRow)
		roundShiftArray(row, -shift[0])
	}

	transposed := coeffs.Transpose()
	colClamp := uint(bitDepth + 6)
	if colClamp < 16 {
		colClamp = 16
	}
	for j := 0; j < n; j++ {
		col := transposed.Row(j)
		clampArray(col, colClamp)
		inv1D(col, cosBit, stageRangeCol)
		roundShiftArray(col, -shift[1])
	}

	transposed.TransposeInto(coeffs)
}
