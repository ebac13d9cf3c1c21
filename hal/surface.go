package hal

// Surface is a pitch-addressed 16-bit pixel buffer.
//
// Pixel (x, y) lives at Pix[y*Pitch+x]. Width and Height describe the visible
// region; columns Width..Pitch-1 are padding.
type Surface struct {
	Pix    []uint16
	Pitch  int
	Width  int
	Height int
}

// NewSurface allocates a zeroed surface.
func NewSurface(width, height, pitch int) Surface {
	if pitch < width {
		pitch = width
	}
	return Surface{
		Pix:    make([]uint16, pitch*height),
		Pitch:  pitch,
		Width:  width,
		Height: height,
	}
}

// Valid reports whether the geometry fits the backing slice.
func (s Surface) Valid() bool {
	if s.Width <= 0 || s.Height <= 0 || s.Pitch < s.Width {
		return false
	}
	return len(s.Pix) >= (s.Height-1)*s.Pitch+s.Width
}

func (s Surface) Offset(x, y int) int { return y*s.Pitch + x }

func (s Surface) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// At returns 0 outside the visible region.
func (s Surface) At(x, y int) uint16 {
	if !s.In(x, y) {
		return 0
	}
	return s.Pix[y*s.Pitch+x]
}

func (s Surface) Set(x, y int, c uint16) {
	if !s.In(x, y) {
		return
	}
	s.Pix[y*s.Pitch+x] = c
}

// Row returns the visible part of row y.
func (s Surface) Row(y int) []uint16 {
	off := y * s.Pitch
	return s.Pix[off : off+s.Width]
}

// Sub returns a view of the rectangle at (x, y) sharing the same memory.
// The rectangle is clipped to the visible region.
func (s Surface) Sub(x, y, width, height int) Surface {
	x0, y0 := clampInt(x, 0, s.Width), clampInt(y, 0, s.Height)
	x1, y1 := clampInt(x+width, 0, s.Width), clampInt(y+height, 0, s.Height)
	if x0 >= x1 || y0 >= y1 {
		return Surface{Pitch: s.Pitch}
	}
	off := y0*s.Pitch + x0
	end := (y1-1)*s.Pitch + x1
	return Surface{
		Pix:    s.Pix[off:end],
		Pitch:  s.Pitch,
		Width:  x1 - x0,
		Height: y1 - y0,
	}
}

// Fill sets every visible pixel to c.
func (s Surface) Fill(c uint16) {
	for y := 0; y < s.Height; y++ {
		row := s.Row(y)
		for i := range row {
			row[i] = c
		}
	}
}

// FillAll sets every pixel including the pitch padding.
func (s Surface) FillAll(c uint16) {
	for i := range s.Pix {
		s.Pix[i] = c
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
