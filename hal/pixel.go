package hal

import (
	"image/color"

	"tinygo.org/x/drivers/pixel"
)

// Alpha5551 is the opaque flag bit of a 5551 pixel.
const Alpha5551 = 0x8000

// RGB5551From8888 converts a packed 0xAABBGGRR colour to 5551 with the
// opaque bit set.
func RGB5551From8888(c uint32) uint16 {
	r, g, b := uint8(c), uint8(c>>8), uint8(c>>16)
	return uint16(pixel.NewRGB555(r, g, b)) | Alpha5551
}

// RGB5551FromRGBA converts c to 5551. Alpha below 50% clears the flag bit.
func RGB5551FromRGBA(c color.RGBA) uint16 {
	p := uint16(pixel.NewRGB555(c.R, c.G, c.B))
	if c.A >= 0x80 {
		p |= Alpha5551
	}
	return p
}

// RGBAFrom5551 expands a 5551 pixel. The flag bit maps to full or zero alpha.
func RGBAFrom5551(p uint16) color.RGBA {
	c := color.RGBA{
		R: expand5(p),
		G: expand5(p >> 5),
		B: expand5(p >> 10),
	}
	if p&Alpha5551 != 0 {
		c.A = 0xff
	}
	return c
}

// RGBAFrom4444 expands a 4444 pixel.
func RGBAFrom4444(p uint16) color.RGBA {
	return color.RGBA{
		R: expand4(p),
		G: expand4(p >> 4),
		B: expand4(p >> 8),
		A: expand4(p >> 12),
	}
}

// RGBAFrom8888 unpacks a 0xAABBGGRR colour.
func RGBAFrom8888(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c), G: uint8(c >> 8), B: uint8(c >> 16), A: uint8(c >> 24)}
}

// Pack8888 packs c as 0xAABBGGRR.
func Pack8888(c color.RGBA) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

func expand5(v uint16) uint8 {
	v &= 0x1f
	return uint8(v<<3 | v>>2)
}

func expand4(v uint16) uint8 {
	v &= 0x0f
	return uint8(v<<4 | v)
}
