package layout

import (
	"fmt"
	"io"
)

// RowPtrs is a 2D shape whose rows are independently allocated slices,
// corresponding to a C pointer-to-pointer built with one malloc per row.
// The rows share no backing store, so no contiguous view of the whole
// value exists.
type RowPtrs[T any] struct {
	rows [][]T
	cols int
}

// NewRowPtrs allocates rows x cols with one allocation per row.
// It panics if either dimension is not positive.
func NewRowPtrs[T any](rows, cols int) *RowPtrs[T] {
	checkDims(rows, cols)
	p := &RowPtrs[T]{
		rows: make([][]T, rows),
		cols: cols,
	}
	for i := range p.rows {
		p.rows[i] = make([]T, cols)
	}
	return p
}

// Rows reports the outer dimension.
func (p *RowPtrs[T]) Rows() int { return len(p.rows) }

// Cols reports the inner dimension.
func (p *RowPtrs[T]) Cols() int { return p.cols }

// At returns the element at row r, column c.
func (p *RowPtrs[T]) At(r, c int) T {
	p.check(r, c)
	return p.rows[r][c]
}

// SetAt stores v at row r, column c.
func (p *RowPtrs[T]) SetAt(r, c int, v T) {
	p.check(r, c)
	p.rows[r][c] = v
}

// Row returns row r's own allocation.
func (p *RowPtrs[T]) Row(r int) []T {
	p.check(r, 0)
	return p.rows[r]
}

// CopyFromGrid copies src's cell values row by row. A single contiguous
// copy is impossible for this shape: the destination rows are unrelated
// allocations. Shapes must match exactly.
func (p *RowPtrs[T]) CopyFromGrid(src *Grid[T]) error {
	if len(p.rows) != src.Rows() || p.cols != src.Cols() {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrShape, src.Rows(), src.Cols(), len(p.rows), p.cols)
	}
	for i, row := range p.rows {
		copy(row, src.Row(i))
	}
	return nil
}

// Fprint renders every element with verb, one row per line.
func (p *RowPtrs[T]) Fprint(w io.Writer, verb string) error {
	return fprint2D(w, verb, len(p.rows), p.cols, p.At)
}

func (p *RowPtrs[T]) check(r, c int) {
	if r < 0 || r >= len(p.rows) || c < 0 || c >= p.cols {
		panic(fmt.Sprintf("layout: index (%d,%d) out of range %dx%d", r, c, len(p.rows), p.cols))
	}
}
