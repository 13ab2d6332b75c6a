// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// genvectors generates the pinned corpus of Punycode round-trip vectors
// used by the regression tests. Labels are drawn from the assigned
// Unicode categories, encoded, verified to round-trip, and written as
// JSON sorted by encoded form.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"

	"github.com/charlievieth/punycode"
)

func init() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout)
}

var unicodeCategories = rangetable.Merge([]*unicode.RangeTable{
	unicode.Cf,
	unicode.Co,
	unicode.Digit,
	unicode.Letter,
	unicode.Mark,
	unicode.Number,
	unicode.Punct,
	unicode.Space,
	unicode.Symbol,
	unicode.Title,
	unicode.Upper,
}...)

type Vector struct {
	Unicode  string `json:"unicode"`
	Punycode string `json:"punycode"`
}

func extendedRunes() []rune {
	var runes []rune
	rangetable.Visit(unicodeCategories, func(r rune) {
		if r >= utf8.RuneSelf && r != utf8.RuneError && utf8.ValidRune(r) {
			runes = append(runes, r)
		}
	})
	return runes
}

// randLabel returns a label of length n with at least one extended code
// point so that its encoded form is always self-describing.
func randLabel(rr *rand.Rand, extended []rune, n int) string {
	rs := make([]rune, n)
	for i := range rs {
		if rr.Float64() < 0.5 {
			rs[i] = rune(byte(rr.Intn('~'-' '+1)) + ' ')
		} else {
			rs[i] = extended[rr.Intn(len(extended))]
		}
	}
	rs[rr.Intn(n)] = extended[rr.Intn(len(extended))]
	return string(rs)
}

func generate(count, maxLen int, seed int64) ([]Vector, error) {
	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(count))
	} else {
		bar = progressbar.DefaultSilent(int64(count))
	}

	rr := rand.New(rand.NewSource(seed))
	extended := extendedRunes()
	seen := make(map[string]bool, count)
	vectors := make([]Vector, 0, count)
	for len(vectors) < count {
		label := randLabel(rr, extended, rr.Intn(maxLen)+1)
		if seen[label] {
			continue
		}
		seen[label] = true

		enc, err := punycode.Encode(label)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", label, err)
		}
		dec, err := punycode.Decode(enc)
		if err != nil {
			return nil, fmt.Errorf("decoding %q (from %q): %w", enc, label, err)
		}
		if dec != label {
			return nil, fmt.Errorf("round-trip mismatch: %q -> %q -> %q", label, enc, dec)
		}

		vectors = append(vectors, Vector{Unicode: label, Punycode: enc})
		if err := bar.Add(1); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(vectors, func(a, b Vector) bool {
		return a.Punycode < b.Punycode
	})
	return vectors, nil
}

func realMain() error {
	count := flag.Int("n", 4096, "number of vectors to generate")
	maxLen := flag.Int("maxlen", 63, "maximum label length in code points")
	seed := flag.Int64("seed", 1, "random seed")
	output := flag.String("o", "testdata/vectors.json", "output file")
	flag.Parse()

	vectors, err := generate(*count, *maxLen, *seed)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(vectors, "", "\t")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return err
	}
	log.Printf("wrote %d vectors to %s", len(vectors), *output)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		log.Fatal(err)
	}
}
