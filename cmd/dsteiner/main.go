// Command dsteiner computes the exact rectilinear Steiner minimum tree
// cost for a terminal set read from a file.
//
// Usage: dsteiner <input-file>
//
// The input file holds a single non-negative integer N (the terminal
// count) followed by N·3 non-negative integers (terminal coordinates, one
// terminal at a time). On success the cost is printed as a decimal integer
// followed by a newline and the process exits 0. On any failure a single
// diagnostic line is written to standard error and the process exits 1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/dsteiner"
	"github.com/katalvlaran/dsteiner/internal/inputio"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		return 1
	}

	f, err := os.Open(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "dsteiner: %v\n", err)
		return 1
	}
	defer f.Close()

	terminals, err := inputio.ReadTerminals(f)
	if err != nil {
		fmt.Fprintf(stderr, "dsteiner: %v\n", err)
		return 1
	}

	cost, err := dsteiner.ComputeOptimumCost(terminals)
	if err != nil {
		fmt.Fprintf(stderr, "dsteiner: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%d\n", cost)
	return 0
}
