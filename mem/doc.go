// Package mem carries memset/memcpy/memmove semantics over to generic
// slices, keeping the classic hazards visible instead of papering over
// them.
//
// Set is the element-wise fill loop; SetBytes fills the raw backing bytes
// of a typed slice, which for any element wider than one byte reproduces
// the memset trap (SetBytes(ints, 1) yields 0x01010101 per element, not
// 1). Copy moves elements front to back and therefore corrupts the tail
// when the destination overlaps past the source, exactly like memcpy;
// Move is the overlap-safe counterpart, exactly like memmove.
package mem
