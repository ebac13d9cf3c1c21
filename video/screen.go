package video

import "screenkit/hal"

// ClearScreen fills the whole back buffer, including the pitch padding,
// with a 0x00BBGGRR colour.
func (c *Compositor) ClearScreen(bgr uint32) {
	c.swap.Back().FillAll(hal.RGB5551From8888(bgr))
}

// ClearTexture fills the source frame with a 5551 colour.
func (c *Compositor) ClearTexture(color uint16) {
	c.Texture().Fill(color)
}

// CopyScreen returns a packed copy of the source frame, SourceWidth pixels
// per row.
func (c *Compositor) CopyScreen() []uint16 {
	tex := c.Texture()
	out := make([]uint16, tex.Width*tex.Height)
	for y := 0; y < tex.Height; y++ {
		copy(out[y*tex.Width:(y+1)*tex.Width], tex.Row(y))
	}
	return out
}

// BlitToScreen copies a packed w x h image into the back buffer at (x,y).
// Parts falling off the screen are skipped.
func (c *Compositor) BlitToScreen(src []uint16, w, h, x, y int) {
	if w <= 0 || h <= 0 || len(src) < w*h {
		return
	}
	Blit(c.swap.Back(), hal.Surface{Pix: src, Pitch: w, Width: w, Height: h}, x, y)
}

// Blit copies src into dst at (x,y), clipped to dst.
func Blit(dst, src hal.Surface, x, y int) {
	for sy := 0; sy < src.Height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= dst.Height {
			continue
		}
		x0, x1 := max(x, 0), min(x+src.Width, dst.Width)
		if x0 >= x1 {
			return
		}
		row := src.Row(sy)
		copy(dst.Pix[dst.Offset(x0, dy):dst.Offset(x1, dy)], row[x0-x:x1-x])
	}
}
