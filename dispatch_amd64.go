//go:build amd64

package zp7

import "golang.org/x/sys/cpu"

func detectFeatures() Features {
	// CLMUL stays off even when cpu.X86.HasPCLMULQDQ: without assembly
	// the carry-less multiply runs in software, where the six shift-XOR
	// steps are faster. The strategy remains selectable via ZP7_CLMUL
	// and is exercised by the differential tests either way.
	return Features{
		POPCNT: cpu.X86.HasPOPCNT,
		BZHI:   cpu.X86.HasBMI2,
	}
}
