package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("single delimiter", func(t *testing.T) {
		got := Tokenize("B@ob hit a ball", "@")
		assert.Equal(t, []string{"B", "ob hit a ball"}, got)
	})

	t.Run("delimiter set", func(t *testing.T) {
		got := Tokenize("one,two;;three ", ",; ")
		assert.Equal(t, []string{"one", "two", "three"}, got)
	})

	t.Run("no delimiters present", func(t *testing.T) {
		assert.Equal(t, []string{"abc"}, Tokenize("abc", ","))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Tokenize("", ","))
		assert.Empty(t, Tokenize(",,,", ","))
	})

	t.Run("input not mutated", func(t *testing.T) {
		s := "a,b"
		_ = Tokenize(s, ",")
		assert.Equal(t, "a,b", s)
	})
}

func TestTokenizeLower(t *testing.T) {
	got := TokenizeLower("B@ob ,!hit a BALL", " ,!@")
	assert.Equal(t, []string{"b", "ob", "hit", "a", "ball"}, got)
}

func TestDeleteAt(t *testing.T) {
	word := []byte("abcdef")
	word = DeleteAt(word, 2)
	assert.Equal(t, "abdef", string(word))

	word = DeleteAt(word, 0)
	assert.Equal(t, "bdef", string(word))

	word = DeleteAt(word, len(word)-1)
	assert.Equal(t, "bde", string(word))

	require.Panics(t, func() { DeleteAt(word, 3) })
	require.Panics(t, func() { DeleteAt(word, -1) })
	require.Panics(t, func() { DeleteAt(nil, 0) })
}
