// Package textutil provides strtok-style tokenizing and in-place byte
// deletion.
package textutil

import (
	"fmt"
	"strings"

	"github.com/eehongzhijun/lowbits/mem"
)

// Tokenize splits s at every rune contained in delims and returns the
// non-empty tokens in order. Unlike C's strtok it does not mutate its
// input and has no hidden state between calls.
func Tokenize(s, delims string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}

// TokenizeLower is Tokenize with every token lowercased.
func TokenizeLower(s, delims string) []string {
	tokens := Tokenize(s, delims)
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}
	return tokens
}

// DeleteAt removes the byte at index i by shifting the tail left in
// place and returns b shortened by one. The shift is overlap-safe.
// DeleteAt panics when i is out of range.
func DeleteAt(b []byte, i int) []byte {
	if i < 0 || i >= len(b) {
		panic(fmt.Sprintf("textutil: delete index %d out of range [0..%d)", i, len(b)))
	}
	mem.Move(b[i:], b[i+1:])
	return b[:len(b)-1]
}
