package mem

import "unsafe"

// Set assigns v to every element of dst. This is the per-element loop
// that a byte-wise fill cannot replace for multi-byte element types.
func Set[T any](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// SetBytes fills the raw backing bytes of dst with b, regardless of the
// element type. SetBytes(dst, 0) zeroes the slice; any other b on a
// multi-byte element type repeats the byte across each element
// (SetBytes(ints, 1) leaves every element 0x01010101). That byte-pattern
// behavior is the documented contract, not an accident.
func SetBytes[T any](dst []T, b byte) {
	if len(dst) == 0 {
		return
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), uintptr(len(dst))*size)
	for i := range raw {
		raw[i] = b
	}
}

// Copy copies min(len(dst), len(src)) elements from src to dst, front to
// back, and reports the number copied. When dst and src share backing
// store and dst starts past src, the front-to-back order overwrites
// source elements before they are read; the tail of the result then
// repeats already-copied data. That is memcpy's overlap hazard, preserved
// on purpose — use Move when the ranges may overlap.
func Copy[T any](dst, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}

// Move copies min(len(dst), len(src)) elements from src to dst and
// reports the number copied. Overlapping ranges are handled correctly:
// the result is as if src were first copied aside in full.
func Move[T any](dst, src []T) int {
	return copy(dst, src)
}
