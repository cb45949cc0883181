package hexconv

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidFormat is the sentinel for all malformed hexadecimal input.
// SyntaxError and RangeError both unwrap to it.
var ErrInvalidFormat = errors.New("invalid hexadecimal format")

// SyntaxError reports a character that is not a hexadecimal digit.
type SyntaxError struct {
	Input  string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid hexadecimal %q: bad character at offset %d", e.Input, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidFormat }

// RangeError reports a value outside the representable 32-bit range.
type RangeError struct {
	Input string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid hexadecimal %q: value exceeds 32 bits", e.Input)
}

func (e *RangeError) Unwrap() error { return ErrInvalidFormat }

const hexDigits = "0123456789ABCDEF"

// Parse interprets s as the hexadecimal bit pattern of a 32-bit
// two's-complement integer: Parse("1A") is 26, Parse("FF") is 255 and
// Parse("FFFFFFFF") is -1.
//
// Digits are case-insensitive and a single leading "0x" or "0X" prefix is
// accepted. A leading '-' negates the parsed magnitude, which must then fit
// in [0, 1<<31]. Empty input, any non-hex character and out-of-range values
// fail with an error matching ErrInvalidFormat; no partial result is ever
// returned.
func Parse(s string) (int32, error) {
	in := s
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) >= 2 && (s[0] == '0' && (s[1] == 'x' || s[1] == 'X')) {
		s = s[2:]
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty input %q", ErrInvalidFormat, in)
	}

	var v uint64
	for i := 0; i < len(s); i++ {
		d, ok := digitVal(s[i])
		if !ok {
			return 0, &SyntaxError{Input: in, Offset: len(in) - len(s) + i}
		}
		v = v<<4 | uint64(d)
		if v > math.MaxUint32 {
			return 0, &RangeError{Input: in}
		}
	}

	if neg {
		if v > 1<<31 {
			return 0, &RangeError{Input: in}
		}
		return int32(-int64(v)), nil
	}
	return int32(uint32(v)), nil
}

// Format renders the 32-bit two's-complement pattern of v as an uppercase
// hexadecimal string with no leading zeros: Format(26) is "1A", Format(0)
// is "0" and Format(-1) is "FFFFFFFF". The result carries no sign marker.
func Format(v int32) string {
	u := uint32(v)
	if u == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for u != 0 {
		i--
		buf[i] = hexDigits[u&0xF]
		u >>= 4
	}
	return string(buf[i:])
}

func digitVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
