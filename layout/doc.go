// Package layout models two-dimensional data as three deliberately
// incompatible shapes, mirroring the three C layouts that are routinely
// (and wrongly) treated as interchangeable:
//
//   - Grid: one contiguous row-major allocation (int[3][5], or a heap
//     block addressed through int(*)[5]).
//   - RowPtrs: a list of independently allocated rows (int**). The rows
//     are unrelated allocations; nothing guarantees adjacency.
//   - GridView: a non-owning reinterpretation of a caller's flat slice
//     as fixed-width rows (int(*)[5] aliasing an existing array).
//     Writes through the view are writes to the caller's slice.
//
// The types never convert implicitly. Copying between shapes is spelled
// out: Grid to Grid is a single contiguous copy, Grid into RowPtrs must
// walk row by row because a contiguous destination does not exist. In C
// the corresponding shortcut (memcpy into an int**) is a crash; here it
// is unrepresentable.
//
// The package also carries 1D helpers (element count, byte footprint) and
// format-verb printers for diagnostics. Printers render every element with
// a single fmt verb, one row per line; they mutate nothing and return only
// writer errors.
package layout
