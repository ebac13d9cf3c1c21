package gu

import (
	"testing"

	"screenkit/hal"
)

func newTestDevice(w, h int) (*SoftDevice, hal.Surface) {
	d := NewSoftDevice()
	fb := hal.NewSurface(w, h, w)
	d.SetDrawBuffer(fb)
	return d, fb
}

func countColor(fb hal.Surface, c uint16) int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		for _, p := range fb.Row(y) {
			if p == c {
				n++
			}
		}
	}
	return n
}

func TestClearUsesClearColor(t *testing.T) {
	d, fb := newTestDevice(8, 8)
	l := NewList(Direct, 256)
	l.ClearColor(0xff0000ff)
	l.Clear(ColorBufferBit | FastClearBit)
	d.Execute(l)
	d.Sync()
	if got := countColor(fb, 0x801f); got != 64 {
		t.Fatalf("cleared pixels = %d want 64", got)
	}
	if s := d.Stats(); s.Lists != 1 || s.Syncs != 1 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestScissorLimitsClear(t *testing.T) {
	d, fb := newTestDevice(8, 8)
	l := NewList(Direct, 256)
	l.Scissor(2, 2, 4, 5)
	l.Enable(ScissorTest)
	l.ClearColor(0xffffffff)
	l.Clear(ColorBufferBit)
	d.Execute(l)
	if got := countColor(fb, 0xffff); got != 6 {
		t.Fatalf("cleared pixels = %d want 6", got)
	}
}

func TestSpriteCopiesTextureOneToOne(t *testing.T) {
	d, fb := newTestDevice(16, 16)
	tex := hal.NewSurface(4, 4, 8)
	for i := range tex.Pix {
		tex.Pix[i] = uint16(0x8000 | i)
	}
	l := NewList(Direct, 256)
	l.TexImage(tex)
	l.Enable(Texture2D)
	v := l.Vertices(2)
	v[0] = Vertex{U: 0, V: 0, X: 5, Y: 6}
	v[1] = Vertex{U: 4, V: 4, X: 9, Y: 10}
	l.DrawTextured(Sprites, v)

	d.WritebackCache()
	d.Execute(l)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, want := fb.At(5+x, 6+y), tex.At(x, y); got != want {
				t.Fatalf("fb(%d,%d)=%#04x want %#04x", 5+x, 6+y, got, want)
			}
		}
	}
}

func TestTextureReadsNeedWriteback(t *testing.T) {
	d, fb := newTestDevice(4, 4)
	tex := hal.NewSurface(4, 4, 4)
	l := NewList(Direct, 256)
	l.TexImage(tex)
	l.Enable(Texture2D)
	v := l.Vertices(2)
	v[1] = Vertex{U: 4, V: 4, X: 4, Y: 4}
	l.DrawTextured(Sprites, v)
	d.Execute(l)

	tex.Fill(0xffff)
	d.Execute(l)
	if fb.At(0, 0) != 0 {
		t.Fatal("device saw CPU writes without a writeback")
	}
	d.WritebackCache()
	d.Execute(l)
	if fb.At(0, 0) != 0xffff {
		t.Fatalf("after writeback fb = %#04x", fb.At(0, 0))
	}
}

func TestSpriteNearestScale(t *testing.T) {
	d, fb := newTestDevice(6, 1)
	tex := hal.NewSurface(4, 1, 4)
	copy(tex.Pix, []uint16{0x8001, 0x8002, 0x8003, 0x8004})
	l := NewList(Direct, 256)
	l.TexImage(tex)
	l.Enable(Texture2D)
	v := l.Vertices(2)
	v[1] = Vertex{U: 4, V: 1, X: 6, Y: 1}
	l.DrawTextured(Sprites, v)
	d.WritebackCache()
	d.Execute(l)
	want := []uint16{0x8001, 0x8002, 0x8002, 0x8003, 0x8004, 0x8004}
	for x, w := range want {
		if got := fb.At(x, 0); got != w {
			t.Fatalf("fb(%d)=%#04x want %#04x", x, got, w)
		}
	}
}

func TestSpriteLinearBlendsNeighbours(t *testing.T) {
	d, fb := newTestDevice(4, 1)
	tex := hal.NewSurface(2, 1, 2)
	copy(tex.Pix, []uint16{0x8000, 0x801f})
	l := NewList(Direct, 256)
	l.TexImage(tex)
	l.TexFilter(Linear)
	l.Enable(Texture2D)
	v := l.Vertices(2)
	v[1] = Vertex{U: 2, V: 1, X: 4, Y: 1}
	l.DrawTextured(Sprites, v)
	d.WritebackCache()
	d.Execute(l)
	r1 := hal.RGBAFrom5551(fb.At(1, 0)).R
	r2 := hal.RGBAFrom5551(fb.At(2, 0)).R
	if fb.At(0, 0) != 0x8000 || fb.At(3, 0) != 0x801f {
		t.Fatalf("edges = %#04x %#04x", fb.At(0, 0), fb.At(3, 0))
	}
	if r1 == 0 || r1 >= r2 || r2 == 0xff {
		t.Fatalf("interior not interpolated: %d %d", r1, r2)
	}
}

func TestTriangleStripFillsHalfOpenRectangle(t *testing.T) {
	d, fb := newTestDevice(32, 32)
	l := NewList(Direct, 256)
	v := l.ColorVertices16(4)
	const c = 0xffff
	v[0] = ColorVertex16{Color: c, X: 10, Y: 10}
	v[1] = ColorVertex16{Color: c, X: 21, Y: 10}
	v[2] = ColorVertex16{Color: c, X: 10, Y: 21}
	v[3] = ColorVertex16{Color: c, X: 21, Y: 21}
	l.DrawColor16(TriangleStrip, v)
	d.Execute(l)
	if got := countColor(fb, c); got != 121 {
		t.Fatalf("filled pixels = %d want 121", got)
	}
	if fb.At(10, 10) != c || fb.At(20, 20) != c || fb.At(21, 20) != 0 || fb.At(20, 21) != 0 {
		t.Fatal("filled region has wrong bounds")
	}
}

func TestTriangleStripBlendsOnce(t *testing.T) {
	d, fb := newTestDevice(16, 16)
	fb.Fill(0x8000)
	l := NewList(Direct, 256)
	l.Enable(Blend)
	v := l.ColorVertices32(4)
	const c = 0x80ffffff
	v[0] = ColorVertex32{Color: c, X: 0, Y: 0}
	v[1] = ColorVertex32{Color: c, X: 16, Y: 0}
	v[2] = ColorVertex32{Color: c, X: 0, Y: 16}
	v[3] = ColorVertex32{Color: c, X: 16, Y: 16}
	l.DrawColor32(TriangleStrip, v)
	d.Execute(l)
	want := fb.At(0, 0)
	if want == 0x8000 || want == 0xffff {
		t.Fatalf("blend produced %#04x", want)
	}
	// The shared diagonal must not be blended twice.
	if got := countColor(fb, want); got != 256 {
		t.Fatalf("uniformly blended pixels = %d want 256", got)
	}
}

func TestClosedLineStripOutlinesRegion(t *testing.T) {
	d, fb := newTestDevice(32, 32)
	l := NewList(Direct, 256)
	v := l.ColorVertices16(5)
	const c = 0xffff
	v[0] = ColorVertex16{Color: c, X: 10, Y: 10}
	v[1] = ColorVertex16{Color: c, X: 21, Y: 10}
	v[2] = ColorVertex16{Color: c, X: 21, Y: 21}
	v[3] = ColorVertex16{Color: c, X: 10, Y: 21}
	v[4] = ColorVertex16{Color: c, X: 10, Y: 10}
	l.DrawColor16(LineStrip, v)
	d.Execute(l)
	if got := countColor(fb, c); got != 40 {
		t.Fatalf("outline pixels = %d want 40", got)
	}
	for _, p := range [][2]int{{10, 10}, {20, 10}, {20, 20}, {10, 20}, {15, 10}, {20, 15}} {
		if fb.At(p[0], p[1]) != c {
			t.Fatalf("border pixel %v missing", p)
		}
	}
	if fb.At(21, 15) != 0 || fb.At(15, 21) != 0 || fb.At(15, 15) != 0 {
		t.Fatal("outline leaked outside the border")
	}
}

func TestLinesLeaveEndPoint(t *testing.T) {
	d, fb := newTestDevice(16, 16)
	l := NewList(Direct, 256)
	v := l.ColorVertices16(4)
	v[0] = ColorVertex16{Color: 0xffff, X: 2, Y: 3}
	v[1] = ColorVertex16{Color: 0xffff, X: 6, Y: 3}
	v[2] = ColorVertex16{Color: 0xffff, X: 1, Y: 1}
	v[3] = ColorVertex16{Color: 0xffff, X: 4, Y: 4}
	l.DrawColor16(Lines, v)
	d.Execute(l)
	for x := 2; x < 6; x++ {
		if fb.At(x, 3) != 0xffff {
			t.Fatalf("hline pixel %d missing", x)
		}
	}
	if fb.At(6, 3) != 0 {
		t.Fatal("hline plotted its end point")
	}
	if fb.At(1, 1) != 0xffff || fb.At(3, 3) != 0xffff || fb.At(4, 4) != 0 {
		t.Fatal("diagonal wrong")
	}
}

func TestCallListReplays(t *testing.T) {
	d, fb := newTestDevice(4, 4)
	sub := NewList(Call, 128)
	sub.ClearColor(0xffffffff)
	sub.Clear(ColorBufferBit)
	l := NewList(Direct, 128)
	l.CallList(sub)
	d.Execute(l)
	d.Execute(l)
	if countColor(fb, 0xffff) != 16 {
		t.Fatal("called list not executed")
	}
	if d.Stats().Lists != 2 {
		t.Fatalf("lists = %d", d.Stats().Lists)
	}
}

func TestBlendWithTexture4444(t *testing.T) {
	d, fb := newTestDevice(1, 1)
	fb.Fill(0x8000)
	tex := hal.NewSurface(1, 1, 1)
	tex.Pix[0] = 0xffff
	l := NewList(Direct, 128)
	l.TexImage(tex)
	l.TexMode(hal.PixelFormat4444)
	l.Enable(Texture2D)
	l.Enable(Blend)
	v := l.Vertices(2)
	v[1] = Vertex{U: 1, V: 1, X: 1, Y: 1}
	l.DrawTextured(Sprites, v)
	d.WritebackCache()
	d.Execute(l)
	if fb.At(0, 0) != 0xffff {
		t.Fatalf("opaque 4444 texel = %#04x", fb.At(0, 0))
	}
	if d.TexFormat() != hal.PixelFormat4444 || !d.Enabled(Blend) {
		t.Fatal("state not retained after execute")
	}
}
