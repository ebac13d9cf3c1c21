// Package blend averages packed 5551 pixels without unpacking channels.
package blend

// Mask clears the low bit of every colour channel and the flag bit so the
// halved XOR cannot carry between channels.
const Mask = 0x7bde

// Blend returns the per-channel floor average of a and b.
//
// Blend(c, c) == c for every c, and the result is symmetric in a and b.
func Blend(a, b uint16) uint16 {
	return (a & b) + (((a ^ b) & Mask) >> 1)
}

// Blend4 returns the centre value of a 2x2 block laid out as
//
//	a b
//	c d
//
// computed as the blend of the two vertical blends.
func Blend4(a, b, c, d uint16) uint16 {
	return Blend(Blend(a, c), Blend(b, d))
}
