package zp7

import (
	"os"
	"strconv"
	"strings"
)

// Features records the hardware capabilities the kernel takes advantage of.
// Each field independently selects one of two implementations of a
// primitive; every combination produces identical results, so the flags
// affect speed only. Detection runs once at startup, keeping the hot paths
// free of feature branches.
type Features struct {
	// CLMUL selects the carry-less-multiply form of the prefix step
	// used when building the plane set. Pure Go cannot issue the
	// PCLMULQDQ/PMULL instructions, so detection leaves this off; set
	// ZP7_CLMUL to opt in to the software form.
	CLMUL bool

	// POPCNT selects math/bits.OnesCount64, which the compiler lowers
	// to a native population count where the CPU has one. Off means the
	// SWAR fallback.
	POPCNT bool

	// BZHI selects the branch-free zero-high-bits masking used by Pdep,
	// mirroring the BMI2 BZHI instruction's n==64 behavior. Off means
	// the explicit-branch fallback.
	BZHI bool
}

// String returns a short human-readable form such as "popcnt+bzhi", or
// "portable" when every fast path is disabled.
func (f Features) String() string {
	var parts []string
	if f.CLMUL {
		parts = append(parts, "clmul")
	}
	if f.POPCNT {
		parts = append(parts, "popcnt")
	}
	if f.BZHI {
		parts = append(parts, "bzhi")
	}
	if len(parts) == 0 {
		return "portable"
	}
	return strings.Join(parts, "+")
}

// funcs is the table of selected primitives. Filled once in init; never
// mutated afterwards.
type funcs struct {
	prefixShift func(uint64) uint64
	popcount    func(uint64) int
	zeroHigh    func(uint64, int) uint64
}

var (
	detected Features
	funclist funcs
)

// Detected reports the feature set in effect, after environment overrides.
func Detected() Features {
	return detected
}

// CurrentName returns the human-readable name of the selected feature set,
// e.g. "popcnt+bzhi" or "portable".
func CurrentName() string {
	return detected.String()
}

// envSet reports whether the named environment variable requests an
// override. Any non-empty value counts as set unless it parses as a false
// boolean.
func envSet(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// applyOverrides adjusts detected features from the environment:
// ZP7_PORTABLE disables everything, ZP7_NO_POPCNT / ZP7_NO_BZHI disable one
// feature each, and ZP7_CLMUL opts in to the carry-less-multiply prefix
// step. Useful for testing and debugging.
func applyOverrides(f Features) Features {
	if envSet("ZP7_PORTABLE") {
		return Features{}
	}
	if envSet("ZP7_CLMUL") {
		f.CLMUL = true
	}
	if envSet("ZP7_NO_CLMUL") {
		f.CLMUL = false
	}
	if envSet("ZP7_NO_POPCNT") {
		f.POPCNT = false
	}
	if envSet("ZP7_NO_BZHI") {
		f.BZHI = false
	}
	return f
}

// selectFuncs maps a feature set to its primitive table.
func selectFuncs(f Features) funcs {
	fl := funcs{
		prefixShift: prefixXorShift,
		popcount:    popcountSWAR,
		zeroHigh:    zeroHighBranch,
	}
	if f.CLMUL {
		fl.prefixShift = prefixXorCLMUL
	}
	if f.POPCNT {
		fl.popcount = popcountNative
	}
	if f.BZHI {
		fl.zeroHigh = zeroHighMask
	}
	return fl
}

func init() {
	detected = applyOverrides(detectFeatures())
	funclist = selectFuncs(detected)
}
