// Package lowbits provides small, sharply scoped utilities for low-level
// bit and memory work: single-word bit-field manipulation, hexadecimal
// base conversion, and helpers that make the differences between the
// common 2D memory layouts explicit instead of letting them alias.
//
// The root package covers bit-field operations on a uint32. All
// operations are pure and return a new value; positions are zero-based
// from the least significant bit and validated, so an out-of-range
// position fails loudly instead of silently wrapping.
//
//	n := lowbits.Set(0x0A, 2)        // 0x0E
//	n = lowbits.Clear(n, 2)          // 0x0A
//	ok := lowbits.Check(n, 1)        // true
//	fmt.Println(lowbits.Bin(n))      // 00000000000000000000000000001010
//
// Subpackages:
//   - hexconv: hex string to int32 conversion and back, with a documented
//     two's-complement policy and explicit malformed-input errors.
//   - layout: the three incompatible 2D shapes (contiguous grid,
//     per-row allocations, non-owning view) kept as distinct types,
//     plus format-verb printers for 1D and 2D data.
//   - mem: memset/memcpy/memmove semantics over generic slices,
//     preserving the classic pitfalls as explicit, documented behavior.
//   - bitset: dense and sparse bit sets for positions beyond one word.
//   - mathx: gcd/lcm and a minimum-coin-count DP.
//   - textutil: delimiter tokenizing and in-place byte deletion.
package lowbits
