package rkiss

import "testing"

func TestDeterministic(t *testing.T) {
	a, b := New(), New()
	for i := 0; i < 1000; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d: %#016x != %#016x", i, x, y)
		}
	}
}

func TestNoShortCycle(t *testing.T) {
	s := New()
	seen := make(map[uint64]int, 1<<16)
	for i := 0; i < 1<<16; i++ {
		v := s.Next()
		if prev, ok := seen[v]; ok {
			t.Fatalf("value %#016x repeated at draws %d and %d", v, prev, i)
		}
		seen[v] = i
	}
}

func TestBitBalance(t *testing.T) {
	// Each bit position should be set roughly half the time.
	const draws = 1 << 14
	var counts [64]int
	s := New()
	for i := 0; i < draws; i++ {
		v := s.Next()
		for b := 0; b < 64; b++ {
			counts[b] += int(v >> b & 1)
		}
	}
	for b, c := range counts {
		if c < draws*4/10 || c > draws*6/10 {
			t.Errorf("bit %d set %d of %d draws", b, c, draws)
		}
	}
}
