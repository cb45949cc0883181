package lowbits

import (
	"fmt"
	"io"
)

// Width is the number of addressable bits in a value.
const Width = 32

func checkPos(pos uint) {
	if pos >= Width {
		panic(fmt.Sprintf("lowbits: bit position %d out of range [0..31]", pos))
	}
}

// Set returns n with bit pos forced to 1. The input is not mutated.
//
// Bit positions are zero-based, counted from the least significant bit.
// Set panics if pos is greater than 31.
func Set(n uint32, pos uint) uint32 {
	checkPos(pos)
	return n | 1<<pos
}

// Clear returns n with bit pos forced to 0.
// Clear panics if pos is greater than 31.
func Clear(n uint32, pos uint) uint32 {
	checkPos(pos)
	return n &^ (1 << pos)
}

// Toggle returns n with bit pos flipped.
// Toggle panics if pos is greater than 31.
func Toggle(n uint32, pos uint) uint32 {
	checkPos(pos)
	return n ^ 1<<pos
}

// Check reports whether bit pos of n is 1.
// Check panics if pos is greater than 31.
func Check(n uint32, pos uint) bool {
	checkPos(pos)
	return n&(1<<pos) != 0
}

// SetTo returns n with bit pos forced to 1 when bit is true and to 0
// otherwise. SetTo panics if pos is greater than 31.
func SetTo(n uint32, pos uint, bit bool) uint32 {
	checkPos(pos)
	if bit {
		return n | 1<<pos
	}
	return n &^ (1 << pos)
}

// Bin returns the binary representation of n as 32 '0'/'1' characters,
// most significant bit first.
func Bin(n uint32) string {
	var buf [Width]byte
	return string(AppendBin(buf[:0], n))
}

// AppendBin appends the 32-character binary representation of n to dst and
// returns the extended slice. It allocates only when dst lacks capacity.
func AppendBin(dst []byte, n uint32) []byte {
	for i := Width - 1; i >= 0; i-- {
		dst = append(dst, '0'+byte(n>>uint(i)&1))
	}
	return dst
}

// FprintBin writes the binary representation of n followed by a newline
// to w. It is a rendering side effect only; n is never transformed.
func FprintBin(w io.Writer, n uint32) error {
	var buf [Width + 1]byte
	b := AppendBin(buf[:0], n)
	b = append(b, '\n')
	_, err := w.Write(b)
	return err
}
