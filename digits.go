package punycode

// decodeDigit returns the numeric value of basic code point b, or base if
// b does not represent a base-36 digit. Callers must treat a return value
// >= base as invalid input.
func decodeDigit(b byte) int32 {
	return int32(_digitValues[b])
}

// encodeDigit returns the basic code point representing digit d. The
// upper flag selects the letter case for digits below 26; the encoder
// itself only ever emits lowercase. d must be in [0, 36).
func encodeDigit(d int32, upper bool) byte {
	switch {
	case 0 <= d && d < 26:
		if upper {
			return byte(d) + 'A'
		}
		return byte(d) + 'a'
	case d < 36:
		return byte(d) - 26 + '0'
	}
	panic("punycode: internal error in digit encoding")
}

// Digit values of the 256 byte values: '0'-'9' map to 26-35 and both
// letter cases map to 0-25. Entries of 36 (base) mark bytes that are not
// base-36 digits.
var _digitValues = [256]byte{
	36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
	36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
	36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 26, 27, 28, 29, 30, 31, 32, 33, 34,
	35, 36, 36, 36, 36, 36, 36, 36, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 36, 36, 36, 36, 36, 36,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
	36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
	36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
	36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
	36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
	36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
	36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
	36, 36, 36, 36, 36,
}
