package layout

import (
	"fmt"
	"io"
)

// GridView reinterprets a caller-owned flat slice as fixed-width rows,
// corresponding to a C pointer-to-array aliasing an existing block. The
// view owns nothing: every read and write goes straight to the caller's
// slice, and that aliasing is the point.
type GridView[T any] struct {
	cells []T
	cols  int
}

// ViewOf wraps cells as rows of width cols. The slice length must divide
// evenly into rows; otherwise ViewOf fails with ErrShape.
func ViewOf[T any](cells []T, cols int) (GridView[T], error) {
	if cols <= 0 || len(cells)%cols != 0 {
		return GridView[T]{}, fmt.Errorf("%w: %d cells do not divide into rows of %d", ErrShape, len(cells), cols)
	}
	return GridView[T]{cells: cells, cols: cols}, nil
}

// Rows reports the outer dimension.
func (v GridView[T]) Rows() int { return len(v.cells) / v.cols }

// Cols reports the inner dimension.
func (v GridView[T]) Cols() int { return v.cols }

// At returns the element at row r, column c of the underlying slice.
func (v GridView[T]) At(r, c int) T { return v.cells[v.index(r, c)] }

// SetAt writes v through to the underlying slice.
func (v GridView[T]) SetAt(r, c int, val T) { v.cells[v.index(r, c)] = val }

// Row returns row r as a sub-slice of the underlying slice.
func (v GridView[T]) Row(r int) []T {
	if r < 0 || r >= v.Rows() {
		panic(fmt.Sprintf("layout: row %d out of range [0..%d)", r, v.Rows()))
	}
	start := r * v.cols
	return v.cells[start : start+v.cols : start+v.cols]
}

// Fprint renders every element with verb, one row per line.
func (v GridView[T]) Fprint(w io.Writer, verb string) error {
	return fprint2D(w, verb, v.Rows(), v.cols, v.At)
}

func (v GridView[T]) index(r, c int) int {
	if r < 0 || r >= v.Rows() || c < 0 || c >= v.cols {
		panic(fmt.Sprintf("layout: index (%d,%d) out of range %dx%d", r, c, v.Rows(), v.cols))
	}
	return r*v.cols + c
}
