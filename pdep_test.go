package zp7

import "testing"

func TestPdep(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		mask  uint64
		want  uint64
	}{
		{
			name:  "zero_mask",
			value: 0xDEADBEEFDEADBEEF,
			mask:  0,
			want:  0,
		},
		{
			name:  "all_ones_mask",
			value: 0x123456789ABCDEF0,
			mask:  ^uint64(0),
			want:  0x123456789ABCDEF0,
		},
		{
			name:  "low_nibbles",
			value: 0x00000000FFFFFFFF,
			mask:  0x0F0F0F0F0F0F0F0F,
			want:  0x0F0F0F0F0F0F0F0F,
		},
		{
			name:  "single_low_bit",
			value: 1,
			mask:  1,
			want:  1,
		},
		{
			name:  "single_high_bit",
			value: 1,
			mask:  1 << 63,
			want:  1 << 63,
		},
		{
			name:  "excess_bits_dropped",
			value: 0xFFFFFFFFFFFFFF00,
			mask:  0x00000000000000FF,
			want:  0,
		},
		{
			name:  "byte_scatter",
			value: 0x0000000001030507,
			mask:  0xFF00FF00FF00FF00,
			want:  0x0100030005000700,
		},
		{
			name:  "alternating",
			value: 0x00000000FFFFFFFF,
			mask:  0xAAAAAAAAAAAAAAAA,
			want:  0xAAAAAAAAAAAAAAAA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pdep(tt.value, tt.mask); got != tt.want {
				t.Errorf("Pdep(%#016x, %#016x) = %#016x, want %#016x",
					tt.value, tt.mask, got, tt.want)
			}
			m := Preprocess(tt.mask)
			if got := m.Pdep(tt.value); got != tt.want {
				t.Errorf("Masks.Pdep(%#016x) mask %#016x = %#016x, want %#016x",
					tt.value, tt.mask, got, tt.want)
			}
		})
	}
}

// The all-ones mask has popcount 64, where a naive (1<<p)-1 pre-mask wraps
// to zero under modulo-64 shift semantics. Both masking strategies must
// pass the input through untouched.
func TestPdepFullMaskPopcount64(t *testing.T) {
	values := []uint64{
		0,
		1,
		^uint64(0),
		0x123456789ABCDEF0,
		0x8000000000000001,
	}
	m := Preprocess(^uint64(0))
	for _, v := range values {
		if got := m.Pdep(v); got != v {
			t.Errorf("Pdep(%#016x, all-ones) = %#016x, want identity", v, got)
		}
		if got := zeroHighBranch(v, 64); got != v {
			t.Errorf("zeroHighBranch(%#016x, 64) = %#016x, want identity", v, got)
		}
		if got := zeroHighMask(v, 64); got != v {
			t.Errorf("zeroHighMask(%#016x, 64) = %#016x, want identity", v, got)
		}
	}
}
