package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both indexing implementations are always compiled (index.go), so the
// checked and unchecked paths are covered no matter which build tags are
// active.

func TestAtPassThrough(t *testing.T) {
	s := []int{10, 20, 30, 40, 50}
	for i := range s {
		assert.Equal(t, s[i], atChecked(s, i))
		assert.Equal(t, s[i], atUnchecked(s, i))
		assert.Equal(t, s[i], At(s, i))
	}

	letters := []string{"a", "b", "c"}
	for i := range letters {
		assert.Equal(t, letters[i], atChecked(letters, i))
		assert.Equal(t, letters[i], atUnchecked(letters, i))
	}
}

func TestAtCheckedOutOfBounds(t *testing.T) {
	s := []int{1, 2, 3}

	assert.Panics(t, func() { atChecked(s, len(s)) })
	assert.Panics(t, func() { atChecked(s, -1) })
	assert.Panics(t, func() { mutChecked(s, len(s)) })
	assert.Panics(t, func() { spanChecked(s, 1, len(s)+1) })
	assert.Panics(t, func() { atChecked([]int{}, 0) })
}

func TestMutWritesThrough(t *testing.T) {
	s := []int{1, 2, 3}

	*mutChecked(s, 1) = 20
	assert.Equal(t, []int{1, 20, 3}, s)

	*mutUnchecked(s, 2) = 30
	assert.Equal(t, []int{1, 20, 30}, s)

	*Mut(s, 0) = 10
	assert.Equal(t, []int{10, 20, 30}, s)

	// Mut returns a live pointer into the slice, not a copy.
	require.Same(t, &s[1], Mut(s, 1))
}

func TestSpan(t *testing.T) {
	s := []byte("abcdefgh")

	tests := []struct {
		name   string
		lo, hi int
	}{
		{name: "Full slice", lo: 0, hi: len(s)},
		{name: "Prefix", lo: 0, hi: 3},
		{name: "Suffix", lo: 5, hi: len(s)},
		{name: "Interior", lo: 2, hi: 6},
		{name: "Empty at start", lo: 0, hi: 0},
		{name: "Empty at end", lo: len(s), hi: len(s)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := s[tt.lo:tt.hi]
			assert.Equal(t, expected, spanChecked(s, tt.lo, tt.hi))
			assert.Len(t, spanUnchecked(s, tt.lo, tt.hi), tt.hi-tt.lo)
			if tt.hi > tt.lo {
				assert.Equal(t, expected, spanUnchecked(s, tt.lo, tt.hi))
				assert.Equal(t, expected, Span(s, tt.lo, tt.hi))
			}
		})
	}
}

func TestSpanSharesBacking(t *testing.T) {
	s := []int{1, 2, 3, 4}
	view := spanUnchecked(s, 1, 3)
	view[0] = 20
	assert.Equal(t, []int{1, 20, 3, 4}, s)
}

func BenchmarkAt(b *testing.B) {
	s := make([]int, 1024)
	for i := range s {
		s[i] = i
	}
	b.ResetTimer()

	var sink int
	for i := 0; i < b.N; i++ {
		sink = At(s, i&1023)
	}
	_ = sink
}
