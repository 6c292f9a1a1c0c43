//go:build !debug

package core

// debugAsserts gates precondition checks on the hot paths. The debug build
// tag turns them on; without it the checks are constant-false and the
// compiler drops them entirely.
const debugAsserts = false
