// Package consts holds the static scan orders and neighbor-offset tables
// used by the coefficient context model.
package consts

// Pos is a (row, col) coefficient position.
type Pos struct {
	Row, Col uint8
}

// DefaultScan4x4 maps a zig-zag scan index to a (row, col) position within
// a 4x4 coefficient block.
var DefaultScan4x4 = [16]Pos{
	{0, 0}, {1, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 0}, {3, 0}, {2, 1},
	{1, 2}, {0, 3}, {1, 3}, {2, 2}, {3, 1}, {3, 2}, {2, 3}, {3, 3},
}

// DefaultScan8x8 maps a zig-zag scan index to a (row, col) position within
// an 8x8 coefficient block.
var DefaultScan8x8 = [64]Pos{
	{0, 0}, {1, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 0}, {3, 0}, {2, 1},
	{1, 2}, {0, 3}, {0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}, {5, 0},
	{4, 1}, {3, 2}, {2, 3}, {1, 4}, {0, 5}, {0, 6}, {1, 5}, {2, 4},
	{3, 3}, {4, 2}, {5, 1}, {6, 0}, {7, 0}, {6, 1}, {5, 2}, {4, 3},
	{3, 4}, {2, 5}, {1, 6}, {0, 7}, {1, 7}, {2, 6}, {3, 5}, {4, 4},
	{5, 3}, {6, 2}, {7, 1}, {7, 2}, {6, 3}, {5, 4}, {4, 5}, {3, 6},
	{2, 7}, {3, 7}, {4, 6}, {5, 5}, {6, 4}, {7, 3}, {7, 4}, {6, 5},
	{5, 6}, {4, 7}, {5, 7}, {6, 6}, {7, 5}, {7, 6}, {6, 7}, {7, 7},
}

// SigRefDiffOffset lists the neighbor offsets examined to build coeff_base's
// base_ctx (DCT_DCT only, the only transform type this encoder emits).
var SigRefDiffOffset = [5]Pos{
	{0, 1}, {1, 0}, {1, 1}, {0, 2}, {2, 0},
}

// MagRefOffset lists the neighbor offsets examined to build coeff_br's
// br_ctx.
var MagRefOffset = [3]Pos{
	{0, 1}, {1, 0}, {1, 1},
}

// CoeffBaseCtxOffset8x8 is added to the magnitude-derived part of
// coeff_base's base_ctx, indexed by [min(row,4)][min(col,4)].
var CoeffBaseCtxOffset8x8 = [5][5]uint8{
	{0, 1, 6, 6, 21},
	{1, 6, 6, 21, 21},
	{6, 6, 21, 21, 21},
	{6, 21, 21, 21, 21},
	{21, 21, 21, 21, 21},
}
