package zp7

import (
	"testing"

	"github.com/zwegner/zp7/internal/reference"
	"github.com/zwegner/zp7/internal/rkiss"
)

func TestPopcountVariantsAgree(t *testing.T) {
	inputs := []uint64{
		0,
		1,
		^uint64(0),
		1 << 63,
		0x8000000000000001,
		0x5555555555555555,
		0x0F0F0F0F0F0F0F0F,
	}
	r := rkiss.New()
	for i := 0; i < 1024; i++ {
		inputs = append(inputs, r.Next())
	}

	for _, x := range inputs {
		want := reference.PopCount(x)
		if got := popcountSWAR(x); got != want {
			t.Fatalf("popcountSWAR(%#016x) = %d, want %d", x, got, want)
		}
		if got := popcountNative(x); got != want {
			t.Fatalf("popcountNative(%#016x) = %d, want %d", x, got, want)
		}
	}
}
