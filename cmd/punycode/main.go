// Command punycode converts labels between Unicode and their RFC 3492
// Punycode form.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/charlievieth/punycode"
)

type operation int

const (
	opEncode operation = iota + 1
	opDecode
)

func (op operation) String() string {
	switch op {
	case opEncode:
		return "Encode"
	case opDecode:
		return "Decode"
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// run is the stateless boundary between the user interface and the codec.
func run(op operation, input string) (string, error) {
	switch op {
	case opEncode:
		return punycode.Encode(input)
	case opDecode:
		return punycode.Decode(input)
	}
	return "", fmt.Errorf("invalid choice: %d", int(op))
}

func main() {
	var (
		encode      = flag.Bool("encode", false, "Encode Unicode arguments to Punycode")
		decode      = flag.Bool("decode", false, "Decode Punycode arguments to Unicode")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *encode == *decode {
		fmt.Fprintln(os.Stderr, "Usage: punycode -encode|-decode [label ...]")
		fmt.Fprintln(os.Stderr, "       punycode -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "Labels are read from stdin, one per line, when no arguments are given.")
		os.Exit(1)
	}
	op := opEncode
	if *decode {
		op = opDecode
	}

	if args := flag.Args(); len(args) > 0 {
		for _, s := range args {
			convert(op, s)
		}
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		convert(op, sc.Text())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func convert(op operation, s string) {
	out, err := run(op, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}
