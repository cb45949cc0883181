package mem

import (
	"bytes"
	"testing"
)

func TestSet(t *testing.T) {
	arr := make([]int, 10)
	Set(arr, 1)
	for i, v := range arr {
		if v != 1 {
			t.Fatalf("arr[%d] = %d, want 1", i, v)
		}
	}
}

func TestSetBytesZero(t *testing.T) {
	arr := []int32{7, -1, 42}
	SetBytes(arr, 0)
	for i, v := range arr {
		if v != 0 {
			t.Errorf("arr[%d] = %d, want 0", i, v)
		}
	}
}

func TestSetBytesPitfall(t *testing.T) {
	// Filling int32s with byte 1 yields 0x01010101 per element, not 1.
	arr := make([]int32, 4)
	SetBytes(arr, 1)
	for i, v := range arr {
		if v != 0x01010101 {
			t.Errorf("arr[%d] = %#08x, want 0x01010101", i, v)
		}
	}
}

func TestSetBytesOnBytes(t *testing.T) {
	b := make([]byte, 8)
	SetBytes(b, 0xAB)
	if !bytes.Equal(b, bytes.Repeat([]byte{0xAB}, 8)) {
		t.Errorf("unexpected fill: % x", b)
	}
}

func TestCopyDisjoint(t *testing.T) {
	src := []byte("abc")
	dst := []byte("123")
	if n := Copy(dst, src); n != 3 {
		t.Fatalf("copied %d, want 3", n)
	}
	if string(dst) != "abc" {
		t.Errorf("dst = %q, want %q", dst, "abc")
	}
}

func TestCopyShorterDst(t *testing.T) {
	src := []int{1, 2, 3, 4}
	dst := make([]int, 2)
	if n := Copy(dst, src); n != 2 {
		t.Fatalf("copied %d, want 2", n)
	}
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("dst = %v", dst)
	}
}

// TestOverlapOrdering is the memcpy-vs-memmove contract: on disjoint
// buffers and on overlap with the destination before the source both
// copies agree; with the destination after the source only Move
// preserves the original data.
func TestOverlapOrdering(t *testing.T) {
	base := []byte{'a', 'b', 'c', 'd', 'e', 'f', 0, 0, 0, 0}

	t.Run("disjoint", func(t *testing.T) {
		c := append([]byte(nil), base...)
		m := append([]byte(nil), base...)
		dc := make([]byte, len(base))
		dm := make([]byte, len(base))
		Copy(dc, c)
		Move(dm, m)
		if !bytes.Equal(dc, dm) {
			t.Errorf("disjoint copy differs: %q vs %q", dc, dm)
		}
	})

	t.Run("dst before src", func(t *testing.T) {
		c := append([]byte(nil), base...)
		m := append([]byte(nil), base...)
		Copy(c[0:3], c[2:5])
		Move(m[0:3], m[2:5])
		if string(c[:6]) != "cdedef" {
			t.Errorf("Copy result %q, want %q", c[:6], "cdedef")
		}
		if !bytes.Equal(c, m) {
			t.Errorf("dst-before-src should agree: %q vs %q", c, m)
		}
	})

	t.Run("dst after src", func(t *testing.T) {
		c := append([]byte(nil), base...)
		m := append([]byte(nil), base...)
		Copy(c[2:5], c[0:3])
		Move(m[2:5], m[0:3])
		if string(c[:6]) != "ababaf" {
			t.Errorf("Copy result %q, want %q", c[:6], "ababaf")
		}
		if string(m[:6]) != "ababcf" {
			t.Errorf("Move result %q, want %q", m[:6], "ababcf")
		}
	})
}
