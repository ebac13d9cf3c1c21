// Package icons holds 4-bit alpha artwork for the volume overlay.
//
// Bitmaps pack two pixels per byte: even columns in the low nibble, odd
// columns in the high nibble, rows padded to a whole byte.
package icons

import (
	"fmt"
	"image"
)

// Icon sizes in pixels.
const (
	SpeakerWidth = 32
	SlotWidth    = 12
	Height       = 32
)

// Bitmap is a packed 4-bit alpha image.
type Bitmap struct {
	Width  int
	Height int
	Data   []byte
}

// Stride is the number of bytes per row.
func (b Bitmap) Stride() int { return (b.Width + 1) / 2 }

// Alpha returns the 4-bit alpha of pixel (x, y).
func (b Bitmap) Alpha(x, y int) uint8 {
	v := b.Data[y*b.Stride()+x/2]
	if x&1 == 0 {
		return v & 0x0f
	}
	return v >> 4
}

// Validate checks the data length against the dimensions.
func (b Bitmap) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("icons: invalid size %dx%d", b.Width, b.Height)
	}
	if want := b.Stride() * b.Height; len(b.Data) != want {
		return fmt.Errorf("icons: %dx%d bitmap has %d bytes, want %d", b.Width, b.Height, len(b.Data), want)
	}
	return nil
}

// Pack quantises an alpha image to 4 bits per pixel.
func Pack(img *image.Alpha) Bitmap {
	r := img.Bounds()
	b := Bitmap{Width: r.Dx(), Height: r.Dy()}
	b.Data = make([]byte, b.Stride()*b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			a := img.AlphaAt(r.Min.X+x, r.Min.Y+y).A >> 4
			i := y*b.Stride() + x/2
			if x&1 == 0 {
				b.Data[i] |= a
			} else {
				b.Data[i] |= a << 4
			}
		}
	}
	return b
}

// Image expands the bitmap back to 8-bit alpha.
func (b Bitmap) Image() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.Pix[y*img.Stride+x] = b.Alpha(x, y) * 0x11
		}
	}
	return img
}

// Set is the artwork the overlay needs.
type Set struct {
	Speaker       Bitmap
	SpeakerShadow Bitmap
	Bar           Bitmap
	BarShadow     Bitmap
	Dot           Bitmap
	DotShadow     Bitmap
}

// Names lists the file names used by LoadDir and WriteDir, in field order.
var Names = [6]string{"speaker", "speaker_shadow", "bar", "bar_shadow", "dot", "dot_shadow"}

func (s *Set) bitmaps() [6]*Bitmap {
	return [6]*Bitmap{&s.Speaker, &s.SpeakerShadow, &s.Bar, &s.BarShadow, &s.Dot, &s.DotShadow}
}

// slotWidth is the width expected for Names[i].
func slotWidth(i int) int {
	if i < 2 {
		return SpeakerWidth
	}
	return SlotWidth
}

// Validate checks every bitmap has the size its atlas slot expects.
func (s Set) Validate() error {
	for i, b := range s.bitmaps() {
		w := slotWidth(i)
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%s: %w", Names[i], err)
		}
		if b.Width != w || b.Height != Height {
			return fmt.Errorf("icons: %s is %dx%d, want %dx%d", Names[i], b.Width, b.Height, w, Height)
		}
	}
	return nil
}
