// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package punycode

import (
	"errors"
	"strings"
	"testing"
)

type EncodeTest struct {
	in  string
	out string
}

// Encoding vectors: the RFC 3492 section 7.1 samples that survive
// lowercase digit encoding unchanged, plus assorted labels covering the
// delimiter edge cases.
var encodeTests = []EncodeTest{
	{"", ""},
	{"abc", "abc"},
	{"London", "London"},
	{"-> $1.00 <-", "-> $1.00 <-"},

	// No basic code points: no delimiter in the output.
	{"ü", "tda"},
	{"☃", "n3h"},
	{"αβγ", "mxacd"},
	{"日本語", "wgv71a119e"},
	{"ドメイン名例", "eckwd4c7cu47r2wf"},
	{"そのスピードで", "d9juau41awczczp"},
	{"他们为什么不说中文", "ihqwcrb4cv8a8dqg056pqjye"},
	{"ليهمابتكلموشعربي؟", "egbpdaj6bu4bxfgehfvwxn"},
	{"למההםפשוטלאמדבריםעברית", "4dbcagdahymbxekheh6e0a7fei0b"},
	{"почемужеонинеговорятпорусски", "b1abfaaepdrnnbgefbadotcwatmq2g4l"},
	{"なぜみんな日本語を話してくれないのか", "n8jok5ay5dzabd5bym9f0cm5685rrjetr6pdxa"},
	{
		"세계의모든사람들이한국어를이해한다면얼마나좋을까",
		"989aomsvi5e83db1d2a355cv1e0vak1dwrv93d5xbh15a0dt30a5jpsd879ccm6fea98c",
	},

	// Mixed basic and extended code points.
	{"München", "Mnchen-3ya"},
	{"bücher", "bcher-kva"},
	{"abæcd", "abcd-woa"},
	{"Pročprostěnemluvíčesky", "Proprostnemluvesky-uyb24dma41a"},
	{"3年B組金八先生", "3B-ww4c5e180e575a65lsy2b"},
	{"ひとつ屋根の下2", "2-u9tlzr9756bt3uc0v"},
	{"MajiでKoiする5秒前", "MajiKoi5-783gue6qz075azm5e"},
	{"パフィーdeルンバ", "de-jg4avhby1noc0d"},

	// Hyphens in the basic prefix: only the last delimiter separates the
	// prefix from the encoded suffix.
	{"安室奈美恵-with-SUPER-MONKEYS", "-with-SUPER-MONKEYS-pc58ag80a8qai00g7n9n"},
	{"Hello-Another-Way-それぞれの場所", "Hello-Another-Way--fc4qua05auwb3674vfr0b"},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		got, err := Encode(test.in)
		if err != nil {
			t.Errorf("Encode(%q) = %v", test.in, err)
			continue
		}
		if got != test.out {
			t.Errorf("Encode(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

func TestEncodeRunes(t *testing.T) {
	for _, test := range encodeTests {
		got, err := EncodeRunes([]rune(test.in))
		if err != nil {
			t.Errorf("EncodeRunes(%q) = %v", test.in, err)
			continue
		}
		if got != test.out {
			t.Errorf("EncodeRunes(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

func TestDecode(t *testing.T) {
	// Encoding vectors invert, except for non-empty pure-ASCII labels
	// whose encoded form is indistinguishable from an encoded suffix.
	for _, test := range encodeTests {
		if isASCII(test.in) && test.in != "" {
			continue
		}
		got, err := Decode(test.out)
		if err != nil {
			t.Errorf("Decode(%q) = %v", test.out, err)
			continue
		}
		if got != test.in {
			t.Errorf("Decode(%q) = %q; want: %q", test.out, got, test.in)
		}
	}
}

var decodeTests = []EncodeTest{
	{"", ""},
	{"-", ""},
	{"--", "-"},
	{"abc-", "abc"},
	{"tda", "ü"},
	{"Mnchen-3ya", "München"},
	// Digits are case-insensitive on decode.
	{"TDA", "ü"},
	{"Mnchen-3YA", "München"},
}

func TestDecodeEdgeCases(t *testing.T) {
	for _, test := range decodeTests {
		got, err := Decode(test.in)
		if err != nil {
			t.Errorf("Decode(%q) = %v", test.in, err)
			continue
		}
		if got != test.out {
			t.Errorf("Decode(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"!", ErrInvalidInput},        // not a digit
		{"xyz-!", ErrInvalidInput},    // not a digit after the delimiter
		{"tda!", ErrInvalidInput},     // trailing junk after a valid integer
		{"tdü", ErrInvalidInput},      // non-ASCII byte where a digit is expected
		{"a-b", ErrInvalidInput},      // suffix exhausted mid-integer
		{"xyz-9999", ErrInvalidInput}, // suffix exhausted mid-integer
		{strings.Repeat("9", 12), ErrOverflow},
	}
	for _, test := range tests {
		got, err := Decode(test.in)
		if !errors.Is(err, test.err) {
			t.Errorf("Decode(%q) = %v; want: %v", test.in, err, test.err)
		}
		if got != "" {
			t.Errorf("Decode(%q) returned partial output %q with error", test.in, got)
		}
	}
}

func TestEncodeOverflow(t *testing.T) {
	// A long basic prefix multiplies the first delta past what 32-bit
	// arithmetic can represent.
	in := strings.Repeat("a", 3000) + string(rune(0x10FFFF))
	if _, err := Encode(in); !errors.Is(err, ErrOverflow) {
		t.Errorf("Encode(%q...) = %v; want: %v", in[:8], err, ErrOverflow)
	}
}

func TestDelimiterPlacement(t *testing.T) {
	for _, test := range encodeTests {
		basic, extended := 0, 0
		for _, r := range test.in {
			if isBasic(r) {
				basic++
			} else {
				extended++
			}
		}
		i := strings.LastIndexByte(test.out, delimiter)
		switch {
		case extended == 0:
			if test.out != test.in {
				t.Errorf("Encode(%q) = %q; want the input unchanged", test.in, test.out)
			}
		case basic == 0:
			if i != -1 {
				t.Errorf("Encode(%q) = %q: unexpected delimiter at %d", test.in, test.out, i)
			}
		default:
			if i != basic {
				t.Errorf("Encode(%q) = %q: last delimiter at %d; want: %d",
					test.in, test.out, i, basic)
			}
		}
	}
}

func TestDigitCodec(t *testing.T) {
	for d := int32(0); d < base; d++ {
		for _, upper := range []bool{false, true} {
			b := encodeDigit(d, upper)
			if got := decodeDigit(b); got != d {
				t.Errorf("decodeDigit(encodeDigit(%d, %t)) = %d (%q)", d, upper, got, b)
			}
		}
	}
	lower := encodeDigit(0, false)
	if upper := encodeDigit(0, true); lower == upper {
		t.Errorf("encodeDigit(0, true) = %q; want uppercase", upper)
	}
	for _, b := range []byte{0, ' ', '!', '-', '.', '/', ':', '@', '[', '`', '{', 0x7F, 0x80, 0xFF} {
		if got := decodeDigit(b); got < base {
			t.Errorf("decodeDigit(%q) = %d; want: >= %d", b, got, base)
		}
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		k, bias, want int32
	}{
		{36, 72, tMin},
		{72, 72, tMin},
		{73, 72, 1},
		{97, 72, 25},
		{98, 72, tMax},
		{200, 72, tMax},
		{0, 0, tMin},
		{36, 0, tMax},
	}
	for _, test := range tests {
		if got := threshold(test.k, test.bias); got != test.want {
			t.Errorf("threshold(%d, %d) = %d; want: %d", test.k, test.bias, got, test.want)
		}
	}
}

func TestAdapt(t *testing.T) {
	tests := []struct {
		delta, numPoints int32
		firstTime        bool
		want             int32
	}{
		{0, 1, true, 0},
		{1, 1, true, 0},
		{416, 1, true, 0},
		{700, 1, true, 1},
		{15252, 5, true, 14},
		{2, 2, false, 0},
		{127, 1, false, 27},
		{829, 1, false, 49},
		{1839, 2, false, 54},
		{100000, 10, false, 91},
	}
	for _, test := range tests {
		got := adapt(test.delta, test.numPoints, test.firstTime)
		if got != test.want {
			t.Errorf("adapt(%d, %d, %t) = %d; want: %d",
				test.delta, test.numPoints, test.firstTime, got, test.want)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, test := range encodeTests {
			if _, err := Encode(test.in); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, test := range encodeTests {
			if _, err := Decode(test.out); err != nil {
				b.Fatal(err)
			}
		}
	}
}
