// Package array2d implements a row-major rectangular buffer used to hold
// both pixel planes and coefficient blocks.
package array2d

import "golang.org/x/exp/constraints"

// Array2D is a rows x cols buffer of T, stored row-major.
type Array2D[T any] struct {
	rows, cols int
	data       []T
}

// New allocates a zeroed rows x cols array.
func New[T any](rows, cols int) *Array2D[T] {
	if rows < 0 || cols < 0 {
		panic("array2d: negative dimension")
	}
	return &Array2D[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// NewWith allocates a rows x cols array and fills it via f(row, col).
func NewWith[T any](rows, cols int, f func(row, col int) T) *Array2D[T] {
	a := New[T](rows, cols)
	a.FillWith(f)
	return a
}

// Rows returns the number of rows.
func (a *Array2D[T]) Rows() int { return a.rows }

// Cols returns the number of columns.
func (a *Array2D[T]) Cols() int { return a.cols }

// Row returns the slice backing row i, usable for direct indexing and
// mutation: a.Row(i)[j].
func (a *Array2D[T]) Row(i int) []T {
	if i < 0 || i >= a.rows {
		panic("array2d: row index out of bounds")
	}
	start := i * a.cols
	return a.data[start : start+a.cols]
}

// At returns the element at (row, col).
func (a *Array2D[T]) At(row, col int) T {
	return a.Row(row)[col]
}

// Set stores value at (row, col).
func (a *Array2D[T]) Set(row, col int, value T) {
	a.Row(row)[col] = value
}

// FillWith replaces every element with f(row, col).
func (a *Array2D[T]) FillWith(f func(row, col int) T) {
	for i := 0; i < a.rows; i++ {
		row := a.Row(i)
		for j := 0; j < a.cols; j++ {
			row[j] = f(i, j)
		}
	}
}

// FillRegion overwrites a rowStart..rowStart+rows, colStart..colStart+cols
// sub-rectangle with copies of value.
func (a *Array2D[T]) FillRegion(rowStart, colStart, rows, cols int, value T) {
	rowEnd := rowStart + rows
	colEnd := colStart + cols
	if rowEnd > a.rows {
		panic("array2d: row indices out of bounds")
	}
	if colEnd > a.cols {
		panic("array2d: column indices out of bounds")
	}
	for r := rowStart; r < rowEnd; r++ {
		row := a.Row(r)
		for c := colStart; c < colEnd; c++ {
			row[c] = value
		}
	}
}

// Map replaces every element with f(row, col, current).
func (a *Array2D[T]) Map(f func(row, col int, v T) T) {
	for i := 0; i < a.rows; i++ {
		row := a.Row(i)
		for j := 0; j < a.cols; j++ {
			row[j] = f(i, j, row[j])
		}
	}
}

// TransposeInto writes the transpose of a into dst, which must already be
// allocated with dst.rows == a.cols and dst.cols == a.rows.
func (a *Array2D[T]) TransposeInto(dst *Array2D[T]) {
	if a.rows != dst.cols || a.cols != dst.rows {
		panic("array2d: transpose dimension mismatch")
	}
	for i := 0; i < a.cols; i++ {
		dstRow := dst.Row(i)
		for j := 0; j < a.rows; j++ {
			dstRow[j] = a.At(j, i)
		}
	}
}

// Transpose returns a new array holding the transpose of a.
func (a *Array2D[T]) Transpose() *Array2D[T] {
	dst := New[T](a.cols, a.rows)
	a.TransposeInto(dst)
	return dst
}

// Clone returns an independent copy of a.
func (a *Array2D[T]) Clone() *Array2D[T] {
	dst := New[T](a.rows, a.cols)
	copy(dst.data, a.data)
	return dst
}

// Number is the subset of ordered, numeric element types array2d's helper
// constructors accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Zeroed is an alias for New, kept for readability at call sites that
// explicitly want to document that the buffer starts at the type's zero
// value.
func Zeroed[T Number](rows, cols int) *Array2D[T] {
	return New[T](rows, cols)
}
