// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package punycode

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Bootstring parameters from RFC 3492 section 5. These are fixed by the
// standard and must not be made configurable.
const (
	base        int32 = 36
	tMin        int32 = 1
	tMax        int32 = 26
	skew        int32 = 38
	damp        int32 = 700
	initialBias int32 = 72
	initialN    int32 = 0x80

	delimiter = '-'
)

const maxInt32 = 1<<31 - 1

var (
	// ErrInvalidInput is returned by Decode and DecodeRunes when the
	// encoded suffix contains a character that is not a base-36 digit,
	// ends in the middle of a variable-length integer, or yields a code
	// point that is not a valid rune.
	ErrInvalidInput = errors.New("punycode: invalid input")

	// ErrOverflow is returned when encoding or decoding would exceed the
	// 32-bit arithmetic used internally. It cannot occur for realistic
	// label lengths.
	ErrOverflow = errors.New("punycode: overflow")
)

// isBasic reports whether r is a basic code point (ASCII, value < 0x80).
func isBasic(r rune) bool { return r < initialN }

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// threshold returns the digit threshold t for position k with the current
// bias. A digit below t terminates a variable-length integer; a digit at
// or above it means more digits follow.
func threshold(k, bias int32) int32 {
	if k <= bias {
		return tMin
	}
	if k >= bias+tMax {
		return tMax
	}
	return k - bias
}

// adapt recomputes the bias after a code point has been fully encoded or
// decoded (RFC 3492 section 6.1). All divisions truncate.
func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := int32(0)
	for delta > (base-tMin)*tMax/2 {
		delta /= base - tMin
		k += base
	}
	return k + (base-tMin+1)*delta/(delta+skew)
}

// Encode converts a string of Unicode code points to its Punycode form.
// Strings containing only basic code points are returned unchanged, with
// no delimiter appended.
func Encode(s string) (string, error) {
	if isASCII(s) {
		return s, nil
	}
	return EncodeRunes([]rune(s))
}

// EncodeRunes is like Encode but takes the label as a slice of code
// points.
func EncodeRunes(input []rune) (string, error) {
	output := make([]byte, 0, len(input)*2)
	extended := 0
	for _, r := range input {
		if isBasic(r) {
			output = append(output, byte(r))
		} else {
			extended++
		}
	}
	if extended == 0 {
		return string(output), nil
	}
	b := int32(len(output))
	if b > 0 {
		output = append(output, delimiter)
	}

	n, delta, bias := initialN, int32(0), initialBias
	h := b
	total := int32(len(input))
	for h < total {
		// The smallest unhandled code point value. At least one extended
		// code point >= n remains while h < total, so m is always found.
		m := int32(maxInt32)
		for _, r := range input {
			if r >= n && r < m {
				m = r
			}
		}

		if m-n > (maxInt32-delta)/(h+1) {
			return "", ErrOverflow
		}
		delta += (m - n) * (h + 1)
		n = m

		for _, r := range input {
			if r < n {
				delta++
				if delta < 0 {
					return "", ErrOverflow
				}
				continue
			}
			if r > n {
				continue
			}
			q := delta
			for k := base; ; k += base {
				t := threshold(k, bias)
				if q < t {
					break
				}
				output = append(output, encodeDigit(t+(q-t)%(base-t), false))
				q = (q - t) / (base - t)
			}
			output = append(output, encodeDigit(q, false))
			bias = adapt(delta, h+1, h == b)
			delta = 0
			h++
		}
		delta++
		n++
	}
	return string(output), nil
}

// Decode converts a Punycode string of basic code points back to the
// Unicode string it encodes. It fails fast on malformed input: no partial
// result is ever returned alongside an error.
func Decode(s string) (string, error) {
	output, err := DecodeRunes(s)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// DecodeRunes is like Decode but returns the label as a slice of code
// points.
func DecodeRunes(s string) ([]rune, error) {
	output := make([]rune, 0, len(s))
	pos := 0
	if j := strings.LastIndexByte(s, delimiter); j >= 0 {
		// Code points before the last delimiter are copied verbatim.
		for _, r := range s[:j] {
			output = append(output, r)
		}
		pos = j + 1
	}

	n, i, bias := initialN, int32(0), initialBias
	for pos < len(s) {
		oldi, w := i, int32(1)
		for k := base; ; k += base {
			if pos == len(s) {
				return nil, fmt.Errorf("%w: truncated variable-length integer", ErrInvalidInput)
			}
			digit := decodeDigit(s[pos])
			pos++
			if digit >= base {
				return nil, fmt.Errorf("%w: invalid digit %q", ErrInvalidInput, s[pos-1])
			}
			if digit > (maxInt32-i)/w {
				return nil, ErrOverflow
			}
			i += digit * w
			t := threshold(k, bias)
			if digit < t {
				break
			}
			if w > maxInt32/(base-t) {
				return nil, ErrOverflow
			}
			w *= base - t
		}

		out := int32(len(output) + 1)
		bias = adapt(i-oldi, out, oldi == 0)
		if i/out > maxInt32-n {
			return nil, ErrOverflow
		}
		n += i / out
		i %= out
		if !utf8.ValidRune(n) {
			return nil, fmt.Errorf("%w: code point %#x is not a valid rune", ErrInvalidInput, n)
		}
		output = slices.Insert(output, int(i), n)
		i++
	}
	return output, nil
}
