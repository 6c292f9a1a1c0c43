package core

// Significant bits carried by a UTF-8 continuation byte.
const utf8ContSigBits = 6

// maskShift keeps the low mask bits of b and shifts them left by shift.
func maskShift(b byte, mask, shift uint) rune {
	return rune(b&(1<<mask-1)) << shift
}

// UTF8FirstByte returns the first byte of the UTF-8 encoding of cp.
// Only the magnitude bands of cp are consulted: callers that already know
// the encoded length use this as the single source of truth for the
// leading byte. cp must be in [0, MaxCodePoint] (debug-asserted).
func UTF8FirstByte(cp rune) byte {
	if debugAsserts && (cp < 0 || cp > MaxCodePoint) {
		panic("core: code point out of range")
	}

	if cp < 0x80 {
		// One byte encoding
		return byte(cp)
	}

	if cp < 0x800 {
		// Two byte encoding
		return byte(cp>>6&0x1F) | 0b1100_0000
	}

	if cp < 0x10000 {
		// Three byte encoding
		return byte(cp>>12&0x0F) | 0b1110_0000
	}

	// Four byte encoding
	return byte(cp>>18&0x07) | 0b1111_0000
}

// IsUTF8Continuation reports whether b is a UTF-8 continuation byte
// (bit pattern 10xxxxxx).
func IsUTF8Continuation(b byte) bool {
	return b&0b1100_0000 == 0b1000_0000
}

// DecodeRune2 reconstructs a code point from a 2-byte UTF-8 sequence.
// The bytes must come from pre-validated input: b0 carries the 110xxxxx
// leading pattern and b1 is a continuation byte (debug-asserted only;
// malformed bytes yield garbage in release builds).
func DecodeRune2(b0, b1 byte) rune {
	if debugAsserts && (b0>>5 != 0b110 || !IsUTF8Continuation(b1)) {
		panic("core: malformed 2-byte sequence")
	}
	return maskShift(b0, 5, utf8ContSigBits) | maskShift(b1, utf8ContSigBits, 0)
}

// DecodeRune3 reconstructs a code point from a 3-byte UTF-8 sequence.
// b0 must carry the 1110xxxx leading pattern; b1 and b2 must be
// continuation bytes (debug-asserted only).
func DecodeRune3(b0, b1, b2 byte) rune {
	if debugAsserts && (b0>>4 != 0b1110 || !IsUTF8Continuation(b1) || !IsUTF8Continuation(b2)) {
		panic("core: malformed 3-byte sequence")
	}
	return maskShift(b0, 4, 2*utf8ContSigBits) |
		maskShift(b1, utf8ContSigBits, utf8ContSigBits) |
		maskShift(b2, utf8ContSigBits, 0)
}

// DecodeRune4 reconstructs a code point from a 4-byte UTF-8 sequence.
// b0 must carry the 11110xxx leading pattern; b1, b2 and b3 must be
// continuation bytes (debug-asserted only).
func DecodeRune4(b0, b1, b2, b3 byte) rune {
	if debugAsserts && (b0>>3 != 0b11110 ||
		!IsUTF8Continuation(b1) || !IsUTF8Continuation(b2) || !IsUTF8Continuation(b3)) {
		panic("core: malformed 4-byte sequence")
	}
	return maskShift(b0, 3, 3*utf8ContSigBits) |
		maskShift(b1, utf8ContSigBits, 2*utf8ContSigBits) |
		maskShift(b2, utf8ContSigBits, utf8ContSigBits) |
		maskShift(b3, utf8ContSigBits, 0)
}

// RuneLen returns the number of bytes in the UTF-8 encoding of cp.
// cp must be in [0, MaxCodePoint] (debug-asserted).
func RuneLen(cp rune) int {
	if debugAsserts && (cp < 0 || cp > MaxCodePoint) {
		panic("core: code point out of range")
	}

	if cp < 0x80 {
		return 1
	}
	if cp < 0x800 {
		return 2
	}
	if cp < 0x10000 {
		return 3
	}
	return 4
}

// EncodeRune writes the UTF-8 encoding of cp into buf and returns the
// number of bytes written. buf must have room for RuneLen(cp) bytes and
// cp must be in [0, MaxCodePoint] (debug-asserted). Surrogates are encoded
// as-is; the engine's code-point sets track them like any other value.
func EncodeRune(buf []byte, cp rune) int {
	if debugAsserts && (cp < 0 || cp > MaxCodePoint) {
		panic("core: code point out of range")
	}

	if cp < 0x80 {
		buf[0] = byte(cp)
		return 1
	}

	if cp < 0x800 {
		buf[0] = byte(0xC0 | cp>>6)
		buf[1] = byte(0x80 | cp&0x3F)
		return 2
	}

	if cp < 0x10000 {
		buf[0] = byte(0xE0 | cp>>12)
		buf[1] = byte(0x80 | (cp>>6)&0x3F)
		buf[2] = byte(0x80 | cp&0x3F)
		return 3
	}

	buf[0] = byte(0xF0 | cp>>18)
	buf[1] = byte(0x80 | (cp>>12)&0x3F)
	buf[2] = byte(0x80 | (cp>>6)&0x3F)
	buf[3] = byte(0x80 | cp&0x3F)
	return 4
}
