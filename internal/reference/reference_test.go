package reference

import "testing"

func TestPext(t *testing.T) {
	tests := []struct {
		value, mask, want uint64
	}{
		{0xFFFFFFFFFFFFFFFF, 0, 0},
		{0x123456789ABCDEF0, 0xFFFFFFFFFFFFFFFF, 0x123456789ABCDEF0},
		{0xFFFFFFFFFFFFFFFF, 0x0F0F0F0F0F0F0F0F, 0x00000000FFFFFFFF},
		{0b10110010, 0b11110000, 0b1011},
	}
	for _, tt := range tests {
		if got := Pext(tt.value, tt.mask); got != tt.want {
			t.Errorf("Pext(%#x, %#x) = %#x, want %#x", tt.value, tt.mask, got, tt.want)
		}
	}
}

func TestPdep(t *testing.T) {
	tests := []struct {
		value, mask, want uint64
	}{
		{0xFFFFFFFFFFFFFFFF, 0, 0},
		{0x123456789ABCDEF0, 0xFFFFFFFFFFFFFFFF, 0x123456789ABCDEF0},
		{0x00000000FFFFFFFF, 0x0F0F0F0F0F0F0F0F, 0x0F0F0F0F0F0F0F0F},
		{0b1011, 0b11110000, 0b10110000},
	}
	for _, tt := range tests {
		if got := Pdep(tt.value, tt.mask); got != tt.want {
			t.Errorf("Pdep(%#x, %#x) = %#x, want %#x", tt.value, tt.mask, got, tt.want)
		}
	}
}

func TestPopCount(t *testing.T) {
	tests := []struct {
		x    uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{0xFFFFFFFFFFFFFFFF, 64},
		{0x8000000000000001, 2},
	}
	for _, tt := range tests {
		if got := PopCount(tt.x); got != tt.want {
			t.Errorf("PopCount(%#x) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestUnsetBelow(t *testing.T) {
	tests := []struct {
		mask uint64
		b    uint
		want int
	}{
		{0, 64, 64},
		{0xFFFFFFFFFFFFFFFF, 64, 0},
		{0, 0, 0},
		{0x0F, 8, 4},
		{0xF0, 8, 4},
		{0xF0, 4, 4},
	}
	for _, tt := range tests {
		if got := UnsetBelow(tt.mask, tt.b); got != tt.want {
			t.Errorf("UnsetBelow(%#x, %d) = %d, want %d", tt.mask, tt.b, got, tt.want)
		}
	}
}
