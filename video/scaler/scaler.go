// Package scaler enlarges a frame by 1.5x on the CPU.
package scaler

import (
	"screenkit/hal"
	"screenkit/video/blend"
)

// Upscale2x maps every 2x2 source block onto a 3x3 destination block whose
// top-left corner is dst(ox+3*bx, oy+3*by):
//
//	a        ab        b
//	ac       abcd      bd
//	c        cd        d
//
// Corners copy the source pixels, edges are pairwise blends and the centre is
// the blend of the two vertical blends. Only the visible region of src is
// read. Blocks that would land outside dst are skipped.
func Upscale2x(src, dst hal.Surface, ox, oy int) {
	bw, bh := src.Width/2, src.Height/2
	if bw <= 0 || bh <= 0 || ox < 0 || oy < 0 {
		return
	}
	if n := (dst.Width - ox) / 3; n < bw {
		bw = n
	}
	if n := (dst.Height - oy) / 3; n < bh {
		bh = n
	}
	if bw <= 0 || bh <= 0 {
		return
	}

	sp, dp := src.Pitch, dst.Pitch
	s0 := 0
	d0 := dst.Offset(ox, oy)
	for by := 0; by < bh; by++ {
		s, d := s0, d0
		for bx := 0; bx < bw; bx++ {
			a, b := src.Pix[s], src.Pix[s+1]
			c, e := src.Pix[s+sp], src.Pix[s+sp+1]

			ac := blend.Blend(a, c)
			be := blend.Blend(b, e)

			row := dst.Pix[d : d+3]
			row[0], row[1], row[2] = a, blend.Blend(a, b), b
			row = dst.Pix[d+dp : d+dp+3]
			row[0], row[1], row[2] = ac, blend.Blend(ac, be), be
			row = dst.Pix[d+2*dp : d+2*dp+3]
			row[0], row[1], row[2] = c, blend.Blend(c, e), e

			s += 2
			d += 3
		}
		s0 += 2 * sp
		d0 += 3 * dp
	}
}
