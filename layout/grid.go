package layout

import (
	"errors"
	"fmt"
	"io"
)

// ErrShape is the sentinel for dimension mismatches: flat slices that do
// not divide into rows, and copies between values of different shape.
var ErrShape = errors.New("layout: shape mismatch")

// Grid is a contiguous row-major 2D block: rows*cols elements in a single
// allocation. It corresponds to a C two-dimensional array.
type Grid[T any] struct {
	cells []T
	rows  int
	cols  int
}

// NewGrid allocates a zeroed rows x cols grid.
// It panics if either dimension is not positive.
func NewGrid[T any](rows, cols int) *Grid[T] {
	checkDims(rows, cols)
	return &Grid[T]{
		cells: make([]T, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

// GridOf builds a rows x cols grid backed by a copy of cells, which must
// hold exactly rows*cols elements in row-major order.
func GridOf[T any](rows, cols int, cells []T) (*Grid[T], error) {
	checkDims(rows, cols)
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for %dx%d grid", ErrShape, len(cells), rows, cols)
	}
	g := NewGrid[T](rows, cols)
	copy(g.cells, cells)
	return g, nil
}

// Rows reports the outer dimension.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols reports the inner dimension.
func (g *Grid[T]) Cols() int { return g.cols }

// Count reports the total number of elements (rows*cols).
func (g *Grid[T]) Count() int { return g.rows * g.cols }

// At returns the element at row r, column c.
func (g *Grid[T]) At(r, c int) T { return g.cells[g.index(r, c)] }

// SetAt stores v at row r, column c.
func (g *Grid[T]) SetAt(r, c int, v T) { g.cells[g.index(r, c)] = v }

// Row returns row r as a view into the contiguous block. The capacity is
// clipped so appends cannot bleed into the next row.
func (g *Grid[T]) Row(r int) []T {
	if r < 0 || r >= g.rows {
		panic(fmt.Sprintf("layout: row %d out of range [0..%d)", r, g.rows))
	}
	start := r * g.cols
	return g.cells[start : start+g.cols : start+g.cols]
}

// CopyFrom overwrites g with src's cells in one contiguous copy, which is
// valid precisely because both sides are single allocations. Shapes must
// match exactly.
func (g *Grid[T]) CopyFrom(src *Grid[T]) error {
	if g.rows != src.rows || g.cols != src.cols {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrShape, src.rows, src.cols, g.rows, g.cols)
	}
	copy(g.cells, src.cells)
	return nil
}

// Fprint renders every element with verb, one row per line.
func (g *Grid[T]) Fprint(w io.Writer, verb string) error {
	return fprint2D(w, verb, g.rows, g.cols, g.At)
}

func (g *Grid[T]) index(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("layout: index (%d,%d) out of range %dx%d", r, c, g.rows, g.cols))
	}
	return r*g.cols + c
}

func checkDims(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("layout: invalid dimensions %dx%d", rows, cols))
	}
}
