package phamt

import "testing"

func TestPopcount32(t *testing.T) {
	cases := []struct {
		x    uint32
		want int
	}{
		{0, 0},
		{1, 1},
		{0xFFFFFFFF, 32},
		{0b1010_1010, 4},
	}
	for _, c := range cases {
		if got := popcount32(c.x); got != c.want {
			t.Errorf("popcount32(%#x) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestCtz32(t *testing.T) {
	cases := []struct {
		x    uint32
		want int
	}{
		{1, 0},
		{2, 1},
		{0b1000, 3},
		{1 << 31, 31},
	}
	for _, c := range cases {
		if got := ctz32(c.x); got != c.want {
			t.Errorf("ctz32(%#x) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestLowHighMask32(t *testing.T) {
	if got := lowmask32(0); got != 0 {
		t.Errorf("lowmask32(0) = %#x, want 0", got)
	}
	if got := lowmask32(5); got != 0b11111 {
		t.Errorf("lowmask32(5) = %#x, want 0b11111", got)
	}
	if got := lowmask32(32); got != 0xFFFFFFFF {
		t.Errorf("lowmask32(32) = %#x, want 0xFFFFFFFF", got)
	}
	if got := highmask32(5); got != ^uint32(0b11111) {
		t.Errorf("highmask32(5) = %#x, want %#x", got, ^uint32(0b11111))
	}
}

func TestFirstnBits(t *testing.T) {
	cases := []struct {
		b    uint32
		want bool
	}{
		{0, true},
		{0b1, true},
		{0b11, true},
		{0b101, false},
		{0xFFFFFFFF, true},
		{0b10, false},
	}
	for _, c := range cases {
		if got := firstnBits(c.b); got != c.want {
			t.Errorf("firstnBits(%#b) = %v, want %v", c.b, got, c.want)
		}
	}
}
