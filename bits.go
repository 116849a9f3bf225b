package phamt

import "math/bits"

// Bit primitives over the 32-bit child/slot bitmap. Every node's bitmap
// field is a uint32 regardless of key width: interior nodes and twigs
// both discriminate 5 bits per level, so a node never has more than 32
// slots.

// popcount32 returns the number of set bits in x.
func popcount32(x uint32) int {
	return bits.OnesCount32(x)
}

// ctz32 returns the number of trailing zero bits in x. Undefined when
// x == 0; callers only invoke it on known nonzero bitmaps.
func ctz32(x uint32) int {
	return bits.TrailingZeros32(x)
}

// lowmask32 returns (1 << n) - 1, saturating to all-ones at n >= 32.
func lowmask32(n uint) uint32 {
	return lowmaskU32(n)
}

// highmask32 returns the bitwise complement of lowmask32(n).
func highmask32(n uint) uint32 {
	return ^lowmask32(n)
}

// firstnBits reports whether b's set bits are exactly the lowest
// popcount(b) bits, i.e. b == lowmask32(popcount(b)).
func firstnBits(b uint32) bool {
	return b == lowmask32(uint(popcount32(b)))
}
