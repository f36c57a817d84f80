// Command f4run computes a Gröbner basis for a system of polynomials read
// from a file, printing either the basis size or the basis itself.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"f4gbc/internal/field"
	"f4gbc/internal/gbparse"
	"f4gbc/internal/order"
	"f4gbc/internal/term"
	"f4gbc/pkg/groebner"
)

func main() {
	threads := flag.Int("threads", runtime.NumCPU(), "worker threads for the reduction engine")
	verbosity := flag.Int("verbosity", 0, "log progress when > 0")
	printGB := flag.Bool("print", false, "print the computed basis instead of just its size")
	blockSize := flag.Int("blocksize", 1024, "row width threshold before parallelizing row multiplication")
	simplify := flag.Int("simplify", 0, "simplify database mode: 0=off, 1=in-memory, 2=concurrent")
	sugar := flag.Bool("sugar", true, "use the sugar heuristic for pair-batch selection")
	prime := flag.Uint64("prime", 32003, "characteristic of the coefficient field")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: f4run [flags] <input-file>")
		os.Exit(1)
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("could not open input: %v", err)
	}
	input := strings.Join(strings.Fields(string(raw)), "")

	nvars := gbparse.DetectNumVars(input)
	fld, err := field.New(*prime)
	if err != nil {
		log.Fatalf("bad field: %v", err)
	}
	monoid := term.NewMonoid(nvars)
	ord := order.NewDegRevLex(monoid)

	generators, err := gbparse.Parse(input, monoid, ord, fld)
	if err != nil {
		log.Fatalf("could not parse input: %v", err)
	}

	cfg := groebner.DefaultConfig()
	cfg.Threads = *threads
	cfg.BlockSize = *blockSize
	cfg.SugarSelection = *sugar
	cfg.Verbosity = *verbosity
	switch *simplify {
	case 0:
		cfg.Simplify = groebner.SimplifyOff
	case 1:
		cfg.Simplify = groebner.SimplifyInMemory
	default:
		cfg.Simplify = groebner.SimplifyDatabase
	}

	if *verbosity > 0 {
		log.Printf("parameters: %d threads, %d block size, simplify mode %d, sugar=%v",
			cfg.Threads, cfg.BlockSize, *simplify, cfg.SugarSelection)
	}

	result, err := groebner.Compute(generators, monoid, ord, fld, cfg)
	if err != nil {
		log.Fatalf("computation failed: %v", err)
	}

	if *printGB {
		printBasis(result)
	} else {
		fmt.Printf("Size of GB:\t%d\n", len(result))
	}
}
