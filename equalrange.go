package core

import "cmp"

// EqualRangeFunc returns the half-open index range [lo, hi) of the elements
// of s that compare equal under f, where f reports the element's three-way
// ordering relative to an implicit search key (negative = before the key,
// zero = equal, positive = after). s must already be sorted consistently
// with f; on unsorted input the result is unspecified but the search stays
// in bounds and terminates. When no element compares equal, lo == hi is the
// insertion point for the key.
//
// Two binary searches, O(log n) total: the first treats equal elements as
// after the key to find the leftmost boundary, the second scans only the
// suffix and treats them as before the key to find the rightmost one.
func EqualRangeFunc[T any](s []T, f func(T) int) (lo, hi int) {
	lo = searchBoundary(s, 0, len(s), func(v T) bool { return f(v) < 0 })
	hi = searchBoundary(s, lo, len(s), func(v T) bool { return f(v) <= 0 })
	return lo, hi
}

// EqualRange returns the index range of the elements of s equal to key,
// for naturally ordered element types. Same contract as EqualRangeFunc.
func EqualRange[T cmp.Ordered](s []T, key T) (lo, hi int) {
	return EqualRangeFunc(s, func(v T) int { return cmp.Compare(v, key) })
}

// searchBoundary returns the smallest index in [lo, hi] at which before
// flips to false, assuming before is monotonically true-then-false over
// the window.
func searchBoundary[T any](s []T, lo, hi int, before func(T) bool) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) // avoids overflow on lo+hi
		if before(At(s, mid)) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
