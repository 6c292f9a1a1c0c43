// Package core provides the hot-path primitives shared by the charset
// engine: debug-checked slice indexing, raw UTF-8 byte encoding/decoding,
// and an equal-range binary search over sorted slices.
//
// Everything here is stateless and allocation-free. Preconditions are
// verified with debug assertions only (see the debug build tag); violating
// them in a release build is undefined behavior by design.
package core

// MaxCodePoint is the largest code point the engine's code-point sets can
// hold. Decode functions do not clamp to it; it only bounds what encoders
// accept.
const MaxCodePoint rune = 0x10FFFF
