//go:build arm64

package zp7

import "golang.org/x/sys/cpu"

func detectFeatures() Features {
	// ARMv8 counts bits with the NEON CNT instruction, which
	// math/bits.OnesCount64 compiles to. PMULL exists for carry-less
	// multiply but is unreachable from pure Go, so CLMUL stays off (see
	// dispatch_amd64.go). The branch-free masking form has no
	// dedicated instruction here yet is still branchless, so keep it.
	return Features{
		POPCNT: cpu.ARM64.HasASIMD,
		BZHI:   true,
	}
}
