// Package reference holds bit-at-a-time implementations of PEXT and PDEP.
// They are slow but obviously correct, which makes them the oracle the
// branch-free kernel is checked against. Nothing outside tests and the
// zp7check command should import this package.
package reference

// Pext gathers the bits of a selected by mask into the low bits of the
// result, one position at a time.
func Pext(a, mask uint64) uint64 {
	var r uint64
	j := uint(0)
	for i := uint(0); i < 64; i++ {
		if mask>>i&1 == 1 {
			r |= (a >> i & 1) << j
			j++
		}
	}
	return r
}

// Pdep scatters the low bits of a into the set positions of mask, one
// position at a time.
func Pdep(a, mask uint64) uint64 {
	var r uint64
	j := uint(0)
	for i := uint(0); i < 64; i++ {
		if mask>>i&1 == 1 {
			r |= (a >> j & 1) << i
			j++
		}
	}
	return r
}

// PopCount counts set bits by clearing them one at a time.
func PopCount(x uint64) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

// UnsetBelow counts the unset bits of mask strictly below position b. This
// is the per-position quantity the plane set encodes.
func UnsetBelow(mask uint64, b uint) int {
	n := 0
	for i := uint(0); i < b; i++ {
		if mask>>i&1 == 0 {
			n++
		}
	}
	return n
}
