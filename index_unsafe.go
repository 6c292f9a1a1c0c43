//go:build !safe

package core

// Performance build (default): the debug tag asserts indexes in range,
// release builds skip the check entirely. An out-of-range index in a
// release build is undefined behavior; build with the safe tag for fully
// checked indexing.

// At returns the element at index i. i must be in [0, len(s)).
func At[T any](s []T, i int) T {
	if debugAsserts && (i < 0 || i >= len(s)) {
		panic("core: index out of bounds")
	}
	return atUnchecked(s, i)
}

// Mut returns a pointer to the element at index i. i must be in
// [0, len(s)). The caller must not hold the pointer across concurrent
// access to s.
func Mut[T any](s []T, i int) *T {
	if debugAsserts && (i < 0 || i >= len(s)) {
		panic("core: index out of bounds")
	}
	return mutUnchecked(s, i)
}

// Span returns the subslice s[lo:hi]. Requires 0 <= lo <= hi <= len(s).
func Span[T any](s []T, lo, hi int) []T {
	if debugAsserts && (lo < 0 || lo > hi || hi > len(s)) {
		panic("core: span out of bounds")
	}
	return spanUnchecked(s, lo, hi)
}
