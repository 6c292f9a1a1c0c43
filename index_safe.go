//go:build safe

package core

// Strict-safety build: every access goes through Go's ordinary checked
// indexing and panics on an out-of-range index.

// At returns the element at index i. i must be in [0, len(s)).
func At[T any](s []T, i int) T {
	return atChecked(s, i)
}

// Mut returns a pointer to the element at index i. i must be in
// [0, len(s)). The caller must not hold the pointer across concurrent
// access to s.
func Mut[T any](s []T, i int) *T {
	return mutChecked(s, i)
}

// Span returns the subslice s[lo:hi]. Requires 0 <= lo <= hi <= len(s).
func Span[T any](s []T, lo, hi int) []T {
	return spanChecked(s, lo, hi)
}
