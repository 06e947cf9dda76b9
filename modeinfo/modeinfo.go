// Package modeinfo holds the per-4x4-unit neighbor context grid the
// coefficient context model consults when coding a block: the previous
// generation's culLevel and DC sign, for the above and left neighbors.
package modeinfo

import "github.com/cocosip/go-tinyavif/array2d"

// Info is the neighbor context carried by one 4x4 luma unit, for each of
// the three planes.
type Info struct {
	// LevelCtx is min(sum of |quantized coefficient|, 63) for the block
	// that last wrote this cell, per plane.
	LevelCtx [3]uint8
	// DCSign is signum(dc coefficient) for the block that last wrote this
	// cell, per plane: -1, 0 or +1.
	DCSign [3]int8
}

// Grid is the (yPaddedHeight/4) x (yPaddedWidth/4) array of Info cells
// covering one frame, zero-initialized.
type Grid struct {
	cells *array2d.Array2D[Info]
}

// NewGrid allocates a zeroed grid sized for a luma plane of the given
// padded dimensions.
func NewGrid(yPaddedHeight, yPaddedWidth int) *Grid {
	return &Grid{cells: array2d.New[Info](yPaddedHeight/4, yPaddedWidth/4)}
}

// Rows returns the number of MI rows.
func (g *Grid) Rows() int { return g.cells.Rows() }

// Cols returns the number of MI columns.
func (g *Grid) Cols() int { return g.cells.Cols() }

// At returns the Info stored at MI position (row, col).
func (g *Grid) At(row, col int) Info { return g.cells.At(row, col) }

// Above returns the neighbor directly above (row, col) and whether it
// exists (row > 0).
func (g *Grid) Above(row, col int) (Info, bool) {
	if row <= 0 {
		return Info{}, false
	}
	return g.cells.At(row-1, col), true
}

// Left returns the neighbor directly to the left of (row, col) and
// whether it exists (col > 0).
func (g *Grid) Left(row, col int) (Info, bool) {
	if col <= 0 {
		return Info{}, false
	}
	return g.cells.At(row, col-1), true
}

// FillBlock writes info into every MI cell of the miRows x miCols region
// starting at (miRow, miCol), covering a whole coded block at once. A
// caller must do this only after finishing that block's coefficient
// coding, so the block's own context reads still see the previous
// generation of neighbor cells.
func (g *Grid) FillBlock(miRow, miCol, miRows, miCols int, info Info) {
	g.cells.FillRegion(miRow, miCol, miRows, miCols, info)
}
