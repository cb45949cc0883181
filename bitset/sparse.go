package bitset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sparse is a compressed bitmap over 32-bit positions. It wraps a
// Roaring bitmap and is the right shape when set positions are scattered
// across a large range.
type Sparse struct {
	rb *roaring.Bitmap
}

// NewSparse creates an empty sparse set.
func NewSparse() *Sparse {
	return &Sparse{rb: roaring.New()}
}

// Add sets the bit at the given position.
func (s *Sparse) Add(pos uint32) { s.rb.Add(pos) }

// Remove clears the bit at the given position.
func (s *Sparse) Remove(pos uint32) { s.rb.Remove(pos) }

// Contains reports whether the bit at the given position is set.
func (s *Sparse) Contains(pos uint32) bool { return s.rb.Contains(pos) }

// IsEmpty reports whether no bits are set.
func (s *Sparse) IsEmpty() bool { return s.rb.IsEmpty() }

// Cardinality returns the number of set bits.
func (s *Sparse) Cardinality() uint64 { return s.rb.GetCardinality() }

// Clone returns a deep copy.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{rb: s.rb.Clone()}
}

// And intersects s with other in place.
func (s *Sparse) And(other *Sparse) { s.rb.And(other.rb) }

// Or unions other into s in place.
func (s *Sparse) Or(other *Sparse) { s.rb.Or(other.rb) }

// Clear removes every bit.
func (s *Sparse) Clear() { s.rb.Clear() }

// All iterates the set positions in ascending order.
func (s *Sparse) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
