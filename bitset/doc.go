// Package bitset extends the single-word bit operations of the root
// package to arbitrary positions, in two forms: Dense, a word-backed set
// for compact universes, and Sparse, a compressed Roaring bitmap for
// scattered 32-bit positions. Both are plain types with no locking.
package bitset
