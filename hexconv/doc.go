// Package hexconv converts between hexadecimal strings and 32-bit signed
// integers under a two's-complement policy.
//
// The string "FFFFFFFF" is the bit pattern of -1, not an overflow: parsing
// and formatting both operate on the 32-bit pattern of the value, so
// Parse(Format(x)) == x for every int32. Negative values are therefore
// formatted without a minus sign ("FFFFFFFF", not "-1").
//
// Malformed input is never truncated silently. Empty input, any non-hex
// character, and values that do not fit in 32 bits all fail with an error
// matching ErrInvalidFormat.
package hexconv
