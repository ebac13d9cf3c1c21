package video

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"screenkit/hal"

	"golang.org/x/image/bmp"
)

// ImageFormat is a screenshot encoding.
type ImageFormat uint8

const (
	PNG ImageFormat = iota
	BMP
)

func (f ImageFormat) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Ext is the file extension including the dot.
func (f ImageFormat) Ext() string { return "." + f.String() }

// FormatFromPath picks the format from a file name's extension.
func FormatFromPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	default:
		return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Screenshot encodes the visible frame.
func (c *Compositor) Screenshot(w io.Writer, format ImageFormat) error {
	img := SurfaceImage(c.swap.Front())
	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// SurfaceImage converts the visible region of s to an opaque RGBA image.
func SurfaceImage(s hal.Surface) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		row := s.Row(y)
		for x, p := range row {
			c := hal.RGBAFrom5551(p)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
		}
	}
	return img
}
