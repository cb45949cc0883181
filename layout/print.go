package layout

import (
	"fmt"
	"io"
	"unsafe"
)

// Count reports the number of elements in xs, computed as the slice's
// total byte footprint divided by the element size. For zero-size element
// types it falls back to len(xs).
func Count[T any](xs []T) int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return len(xs)
	}
	return int(ByteSize(xs) / size)
}

// ByteSize reports the total byte footprint of the elements of xs,
// mirroring sizeof on a whole C array.
func ByteSize[T any](xs []T) uintptr {
	var zero T
	return uintptr(len(xs)) * unsafe.Sizeof(zero)
}

// Fprint renders every element of xs with verb, separated by single
// spaces and terminated by a newline. Diagnostic only: xs is not touched.
func Fprint[T any](w io.Writer, verb string, xs []T) error {
	for _, x := range xs {
		if _, err := fmt.Fprintf(w, verb+" ", x); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func fprint2D[T any](w io.Writer, verb string, rows, cols int, at func(r, c int) T) error {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if _, err := fmt.Fprintf(w, verb+" ", at(r, c)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
