package video

import (
	"image/color"

	"screenkit/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Metrics of the default font.
const (
	DefaultFontHeight = 10
	DefaultFontOffset = 6
)

// DefaultFont is the small proportional font used for menus and the console.
func DefaultFont() tinyfont.Fonter { return &proggy.TinySZ8pt7b }

// TextStamper draws one line of text into a surface with (x,y) as the top
// left corner of the line box. bg below zero leaves the background alone.
type TextStamper interface {
	Stamp(dst hal.Surface, text string, x, y int, fg uint16, bg int)
	Width(text string) int
	Height() int
}

// FontStamper stamps text with a tinyfont font.
type FontStamper struct {
	font   tinyfont.Fonter
	height int16
	offset int16
}

// NewFontStamper uses the default metrics; see NewFontStamperMetrics for
// other fonts.
func NewFontStamper(font tinyfont.Fonter) *FontStamper {
	return NewFontStamperMetrics(font, DefaultFontHeight, DefaultFontOffset)
}

// NewFontStamperMetrics takes the line height and the distance from the top
// of the line box to the baseline.
func NewFontStamperMetrics(font tinyfont.Fonter, height, offset int) *FontStamper {
	return &FontStamper{font: font, height: int16(height), offset: int16(offset)}
}

func (s *FontStamper) Width(text string) int {
	_, w := tinyfont.LineWidth(s.font, text)
	return int(w)
}

func (s *FontStamper) Height() int { return int(s.height) }

func (s *FontStamper) Stamp(dst hal.Surface, text string, x, y int, fg uint16, bg int) {
	d := &surfaceDisplay{s: dst}
	if bg >= 0 {
		d.fill(x, y, s.Width(text), int(s.height), uint16(bg))
	}
	tinyfont.WriteLine(d, s.font, int16(x), int16(y)+s.offset, text, hal.RGBAFrom5551(fg))
}

// PrintString draws text into the back buffer. A negative x centres the
// text on the screen.
func (c *Compositor) PrintString(text string, x, y int, fg uint16, bg int) {
	back := c.swap.Back()
	if x < 0 {
		x = (back.Width - c.text.Width(text)) >> 1
	}
	c.text.Stamp(back, text, x, y, fg, bg)
}

// PrintStringExt draws text into dst. A negative x centres the text within
// the destination pitch.
func (c *Compositor) PrintStringExt(text string, x, y int, fg uint16, bg int, dst hal.Surface) {
	if x < 0 {
		x = (dst.Pitch - c.text.Width(text)) >> 1
	}
	c.text.Stamp(dst, text, x, y, fg, bg)
}

// surfaceDisplay lets tinyfont and tinyterm draw into a Surface.
type surfaceDisplay struct {
	s hal.Surface
}

var _ drivers.Displayer = (*surfaceDisplay)(nil)

func (d *surfaceDisplay) Size() (x, y int16) {
	return int16(d.s.Width), int16(d.s.Height)
}

func (d *surfaceDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.s.Set(int(x), int(y), hal.RGB5551FromRGBA(c))
}

func (d *surfaceDisplay) Display() error { return nil }

func (d *surfaceDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.fill(int(x), int(y), int(width), int(height), hal.RGB5551FromRGBA(c))
	return nil
}

func (d *surfaceDisplay) fill(x, y, width, height int, c uint16) {
	d.s.Sub(x, y, width, height).Fill(c)
}

// ScrollUp moves the content up by pixels rows and clears the exposed rows.
func (d *surfaceDisplay) ScrollUp(pixels int16, bg color.RGBA) error {
	n := int(pixels)
	if n <= 0 {
		return nil
	}
	h := d.s.Height
	if n < h {
		for y := 0; y+n < h; y++ {
			copy(d.s.Row(y), d.s.Row(y+n))
		}
	} else {
		n = h
	}
	d.fill(0, h-n, d.s.Width, n, hal.RGB5551FromRGBA(bg))
	return nil
}

func (d *surfaceDisplay) SetScroll(line int16) {}

func (d *surfaceDisplay) SetRotation(rotation drivers.Rotation) error { return nil }

// TextWidth is the width in pixels PrintString uses for text.
func (c *Compositor) TextWidth(text string) int { return c.text.Width(text) }

// LineHeight is the height of one line of text.
func (c *Compositor) LineHeight() int { return c.text.Height() }
