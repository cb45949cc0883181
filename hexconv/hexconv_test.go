package hexconv

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := []struct {
			in   string
			want int32
		}{
			{"0", 0},
			{"1A", 26},
			{"1a", 26},
			{"0x1A", 26},
			{"0X1a", 26},
			{"FF", 255},
			{"7FFFFFFF", math.MaxInt32},
			{"80000000", math.MinInt32},
			{"FFFFFFFF", -1},
			{"ffffffff", -1},
			{"000000001A", 26},
			{"-1", -1},
			{"-0x10", -16},
			{"-80000000", math.MinInt32},
		}
		for _, tt := range tests {
			t.Run(tt.in, func(t *testing.T) {
				got, err := Parse(tt.in)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"", "G1", "1G", "0x", "-", "-0x", "12 34", "0x1.5", "１２"} {
			t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
				_, err := Parse(in)
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
			})
		}
	})

	t.Run("syntax error reports offset", func(t *testing.T) {
		_, err := Parse("0x12G4")
		var se *SyntaxError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 4, se.Offset)
		assert.Equal(t, "0x12G4", se.Input)
	})

	t.Run("range", func(t *testing.T) {
		var re *RangeError
		_, err := Parse("100000000")
		require.ErrorAs(t, err, &re)
		assert.ErrorIs(t, err, ErrInvalidFormat)

		_, err = Parse("-80000001")
		require.ErrorAs(t, err, &re)

		// Leading zeros do not count against the width.
		_, err = Parse("0000000000FF")
		require.NoError(t, err)
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   int32
		want string
	}{
		{0, "0"},
		{26, "1A"},
		{255, "FF"},
		{math.MaxInt32, "7FFFFFFF"},
		{math.MinInt32, "80000000"},
		{-1, "FFFFFFFF"},
		{-16, "FFFFFFF0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%d)", tt.in)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 26, 255, 4096, -4096, math.MaxInt32, math.MinInt32, math.MinInt32 + 1}
	for _, v := range values {
		got, err := Parse(Format(v))
		require.NoError(t, err, "Format(%d)=%q", v, Format(v))
		assert.Equal(t, v, got)
	}
}

func ExampleParse() {
	v, _ := Parse("1A")
	fmt.Println(v)
	v, _ = Parse("FFFFFFFF")
	fmt.Println(v)
	// Output:
	// 26
	// -1
}

func ExampleFormat() {
	fmt.Println(Format(26))
	fmt.Println(Format(-1))
	// Output:
	// 1A
	// FFFFFFFF
}

func ExampleParse_invalid() {
	_, err := Parse("G1")
	fmt.Println(errors.Is(err, ErrInvalidFormat))
	// Output: true
}
