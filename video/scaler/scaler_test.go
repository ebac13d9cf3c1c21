package scaler

import (
	"testing"

	"screenkit/hal"
	"screenkit/video/blend"
)

func TestUpscale2xBlock(t *testing.T) {
	src := hal.NewSurface(2, 2, 4)
	src.Set(0, 0, 0x001f)
	src.Set(1, 0, 0x03e0)
	src.Set(0, 1, 0x7c00)
	src.Set(1, 1, 0x7fff)
	dst := hal.NewSurface(8, 8, 8)

	Upscale2x(src, dst, 1, 2)

	a, b, c, d := uint16(0x001f), uint16(0x03e0), uint16(0x7c00), uint16(0x7fff)
	want := [3][3]uint16{
		{a, blend.Blend(a, b), b},
		{blend.Blend(a, c), blend.Blend4(a, b, c, d), blend.Blend(b, d)},
		{c, blend.Blend(c, d), d},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := dst.At(1+x, 2+y); got != want[y][x] {
				t.Fatalf("dst(%d,%d)=%#04x want %#04x", 1+x, 2+y, got, want[y][x])
			}
		}
	}
	if dst.At(0, 2) != 0 || dst.At(4, 2) != 0 || dst.At(1, 1) != 0 || dst.At(1, 5) != 0 {
		t.Fatal("wrote outside the 3x3 block")
	}
}

func TestUpscale2xUniformSourceFillsRegion(t *testing.T) {
	const w, h = 240, 160
	const c = uint16(0x5555)
	src := hal.NewSurface(w, h, 256)
	src.Fill(c)
	// Pitch padding must never be sampled.
	for y := 0; y < h; y++ {
		src.Pix[y*src.Pitch+w] = 0x1234
	}
	dst := hal.NewSurface(hal.ScreenWidth, hal.ScreenHeight, hal.LinePitch)

	Upscale2x(src, dst, 60, 16)

	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			inside := x >= 60 && x < 60+360 && y >= 16 && y < 16+240
			got := dst.At(x, y)
			if inside && got != c {
				t.Fatalf("dst(%d,%d)=%#04x want %#04x", x, y, got, c)
			}
			if !inside && got != 0 {
				t.Fatalf("dst(%d,%d)=%#04x outside target", x, y, got)
			}
		}
	}
}

func TestUpscale2xClipsOversizedSource(t *testing.T) {
	src := hal.NewSurface(20, 20, 20)
	src.Fill(0x7fff)
	dst := hal.NewSurface(10, 10, 10)

	Upscale2x(src, dst, 2, 2)

	// Two whole blocks fit per axis starting at 2: columns 2..7.
	if dst.At(7, 7) != 0x7fff {
		t.Fatal("last fitting block missing")
	}
	if dst.At(8, 8) != 0 || dst.At(9, 2) != 0 {
		t.Fatal("partial block written")
	}
}
