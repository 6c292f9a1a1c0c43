package core

import "unsafe"

// Slice indexing for the engine's inner loops. The exported At/Mut/Span
// wrappers live in index_safe.go and index_unsafe.go, selected by the safe
// build tag; the bodies below are always compiled so both paths stay under
// test regardless of the active tags.

func atChecked[T any](s []T, i int) T {
	return s[i]
}

func mutChecked[T any](s []T, i int) *T {
	return &s[i]
}

func spanChecked[T any](s []T, lo, hi int) []T {
	return s[lo:hi]
}

// atUnchecked loads s[i] without a bounds check.
// SAFE only when 0 <= i < len(s); the caller has already validated the
// index (or is running with the debug tag, which asserts it).
func atUnchecked[T any](s []T, i int) T {
	var zero T
	return *(*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(i)*unsafe.Sizeof(zero)))
}

// mutUnchecked returns &s[i] without a bounds check.
// Same safety requirements as atUnchecked; the usual exclusive-access
// discipline for the returned pointer is on the caller.
func mutUnchecked[T any](s []T, i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(i)*unsafe.Sizeof(zero)))
}

// spanUnchecked returns s[lo:hi] without bounds checks.
// SAFE only when 0 <= lo <= hi <= len(s).
func spanUnchecked[T any](s []T, lo, hi int) []T {
	if lo == hi {
		return nil
	}
	var zero T
	p := (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(lo)*unsafe.Sizeof(zero)))
	return unsafe.Slice(p, hi-lo)
}
