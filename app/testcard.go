package app

import (
	"screenkit/hal"
	"screenkit/video/blend"
)

// Colour bars in 5551: white, yellow, cyan, green, magenta, red, blue, black.
var bars = [...]uint16{0xffff, 0x83ff, 0xffe0, 0x83e0, 0xfc1f, 0x801f, 0xfc00, 0x8000}

// renderTestCard stands in for the emulator core. Colour bars scroll left one
// pixel per frame over an 8x8 checkerboard that halves every other cell, so
// scaling seams and filtering show up clearly.
func renderTestCard(dst hal.Surface, frame uint64) {
	if dst.Width <= 0 {
		return
	}
	shift := int(frame % uint64(dst.Width))
	for y := 0; y < dst.Height; y++ {
		row := dst.Row(y)
		for x := range row {
			c := bars[(x+shift)%dst.Width*len(bars)/dst.Width]
			if (x>>3^y>>3)&1 == 1 {
				c = blend.Blend(c, hal.Alpha5551)
			}
			row[x] = c
		}
	}
}
