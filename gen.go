//go:build gen
// +build gen

// Command gen regenerates the pinned round-trip corpus in testdata
// (`go run -tags gen gen.go`).
package main

import (
	"log"
	"os"
	"os/exec"
)

func main() {
	log.SetFlags(log.Lshortfile)
	cmd := exec.Command("go", "run", "github.com/charlievieth/punycode/internal/genvectors",
		"-o", "testdata/vectors.json")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Fatalf("error running command %q: %v", cmd.Args, err)
	}
}
