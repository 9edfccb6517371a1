// Command zp7check runs a randomized differential check of the PEXT/PDEP
// kernel against bit-at-a-time reference implementations.
//
// Usage:
//
//	zp7check                  # default 64Ki rounds
//	zp7check -rounds 1048576  # longer run
//	zp7check -values 8 -v     # fewer values per mask, report progress
//
// Each round draws a random mask, a denser variant, and both complements,
// covering low, medium and high bit density; every mask is exercised with
// a batch of random values through the one-shot and the precomputed paths.
// The process exits non-zero on the first batch containing a mismatch.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zwegner/zp7"
	"github.com/zwegner/zp7/internal/reference"
	"github.com/zwegner/zp7/internal/rkiss"
)

var (
	rounds  = flag.Int("rounds", 1<<16, "Number of random rounds (4 masks each)")
	values  = flag.Int("values", 32, "Random values tested per mask")
	verbose = flag.Bool("v", false, "Report progress every 8Ki rounds")
)

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	fmt.Printf("features: %s\n", zp7.CurrentName())

	r := rkiss.New()
	var tested, failed uint64
	for round := 0; round < *rounds; round++ {
		mask := r.Next()
		dense := mask | r.Next() | r.Next()
		for _, m := range [...]uint64{mask, ^mask, dense, ^dense} {
			pre := zp7.Preprocess(m)
			for j := 0; j < *values; j++ {
				v := r.Next()
				failed += check("pext", v, m, reference.Pext(v, m), zp7.Pext(v, m), pre.Pext(v))
				failed += check("pdep", v, m, reference.Pdep(v, m), zp7.Pdep(v, m), pre.Pdep(v))
				tested += 2
			}
		}
		if *verbose && (round+1)%(1<<13) == 0 {
			fmt.Printf("%d/%d rounds, %d operations checked\n", round+1, *rounds, tested)
		}
		if failed > 0 {
			break
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "FAIL: %d mismatches after %d operations\n", failed, tested)
		os.Exit(1)
	}
	fmt.Printf("PASS: %d operations checked\n", tested)
}

// check compares the one-shot and precomputed results against the oracle
// and reports the number of mismatches found.
func check(op string, v, m, want, oneShot, precomputed uint64) uint64 {
	var failed uint64
	if oneShot != want {
		fmt.Fprintf(os.Stderr, "%s(%#016x, %#016x) = %#016x, want %#016x\n",
			op, v, m, oneShot, want)
		failed++
	}
	if precomputed != want {
		fmt.Fprintf(os.Stderr, "precomputed %s(%#016x, %#016x) = %#016x, want %#016x\n",
			op, v, m, precomputed, want)
		failed++
	}
	return failed
}
