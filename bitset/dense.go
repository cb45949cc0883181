package bitset

import (
	bbits "github.com/bits-and-blooms/bitset"

	"github.com/eehongzhijun/lowbits"
)

// Dense is a bit set backed by machine words, suited to compact
// universes where most positions may end up set. The zero universe is
// legal; Set grows the set as needed.
type Dense struct {
	bs *bbits.BitSet
}

// NewDense creates a Dense sized for positions [0, n).
func NewDense(n uint) *Dense {
	return &Dense{bs: bbits.New(n)}
}

// Set sets the bit at the given position, growing the set if needed.
func (d *Dense) Set(pos uint) { d.bs.Set(pos) }

// Unset clears the bit at the given position.
func (d *Dense) Unset(pos uint) { d.bs.Clear(pos) }

// SetTo forces the bit at the given position to the given value.
func (d *Dense) SetTo(pos uint, bit bool) { d.bs.SetTo(pos, bit) }

// Test reports whether the bit at the given position is set.
func (d *Dense) Test(pos uint) bool { return d.bs.Test(pos) }

// Toggle flips the bit at the given position.
func (d *Dense) Toggle(pos uint) { d.bs.Flip(pos) }

// Count returns the number of set bits.
func (d *Dense) Count() uint { return d.bs.Count() }

// Len returns the size of the universe in bits.
func (d *Dense) Len() uint { return d.bs.Len() }

// ClearAll unsets every bit without shrinking the universe.
func (d *Dense) ClearAll() { d.bs.ClearAll() }

// Grow ensures the universe covers positions [0, n), preserving every set
// bit. Shrinking is not supported; a smaller n is a no-op.
func (d *Dense) Grow(n uint) {
	if n == 0 || n <= d.bs.Len() {
		return
	}
	// Set extends the wrapped bitset's universe; Clear never shrinks it.
	d.bs.Set(n - 1)
	d.bs.Clear(n - 1)
}

// Bin renders the set as 32-bit binary groups, most significant group
// first, reusing the root package's word rendering.
func (d *Dense) Bin() string {
	groups := (d.Len() + lowbits.Width - 1) / lowbits.Width
	if groups == 0 {
		groups = 1
	}
	buf := make([]byte, 0, groups*(lowbits.Width+1))
	for g := int(groups) - 1; g >= 0; g-- {
		var w uint32
		base := uint(g) * lowbits.Width
		for b := uint(0); b < lowbits.Width; b++ {
			if base+b < d.Len() && d.bs.Test(base+b) {
				w = lowbits.Set(w, b)
			}
		}
		buf = lowbits.AppendBin(buf, w)
		if g > 0 {
			buf = append(buf, ' ')
		}
	}
	return string(buf)
}

// String implements fmt.Stringer as the grouped binary rendering.
func (d *Dense) String() string { return d.Bin() }
