package video

import (
	"testing"

	"screenkit/gu"
	"screenkit/hal"
)

func count(s hal.Surface, c uint16) int {
	_, _, _, _, n := bounds(s, c)
	return n
}

func TestFilledBoxIsInclusive(t *testing.T) {
	c, dev, _ := newTestCompositor(t, nearest(ScaleNone))
	c.DrawFilledBox(10, 10, 20, 20, 0xffff)
	x0, y0, x1, y1, n := bounds(c.Back(), 0xffff)
	if x0 != 10 || y0 != 10 || x1 != 21 || y1 != 21 || n != 121 {
		t.Fatalf("box [%d,%d)x[%d,%d) with %d pixels", x0, x1, y0, y1, n)
	}
	if !dev.Enabled(gu.Texture2D) {
		t.Fatal("texturing should be restored")
	}
}

func TestOutlineBoxBorder(t *testing.T) {
	c, _, _ := newTestCompositor(t, nearest(ScaleNone))
	c.DrawOutlineBox(10, 10, 20, 20, 0xffff)
	back := c.Back()
	if n := count(back, 0xffff); n != 40 {
		t.Fatalf("outline pixels = %d want 40", n)
	}
	for _, p := range [][2]int{{10, 10}, {20, 10}, {20, 20}, {10, 20}} {
		if back.At(p[0], p[1]) != 0xffff {
			t.Fatalf("corner %v missing", p)
		}
	}
	if back.At(15, 15) != 0 {
		t.Fatal("outline should not fill")
	}
}

func TestLinesIncludeEndPoints(t *testing.T) {
	c, _, _ := newTestCompositor(t, nearest(ScaleNone))
	back := c.Back()

	c.DrawLine(2, 2, 6, 6, 0x801f)
	if n := count(back, 0x801f); n != 5 {
		t.Fatalf("diagonal pixels = %d want 5", n)
	}
	if back.At(2, 2) != 0x801f || back.At(6, 6) != 0x801f {
		t.Fatal("diagonal end points missing")
	}

	c.DrawHLine(5, 9, 20, 0x83e0)
	if n := count(back, 0x83e0); n != 5 || back.At(9, 20) != 0x83e0 {
		t.Fatalf("hline pixels = %d", n)
	}

	c.DrawVLine(30, 1, 3, 0xfc00)
	if n := count(back, 0xfc00); n != 3 || back.At(30, 3) != 0xfc00 {
		t.Fatalf("vline pixels = %d", n)
	}

	c.DrawLine(40, 40, 40, 40, 0xffff)
	if back.At(40, 40) != 0xffff {
		t.Fatal("a zero-length line should plot its point")
	}
}

func TestAlphaBoxBlends(t *testing.T) {
	c, dev, _ := newTestCompositor(t, nearest(ScaleNone))
	back := c.Back()
	back.Fill(0xffff)
	c.DrawAlphaBox(0, 0, 9, 9, 0x80000000)

	p := back.At(5, 5)
	if p&0x1f != 15 || p&hal.Alpha5551 == 0 {
		t.Fatalf("half black over white = %#04x", p)
	}
	if back.At(10, 10) != 0xffff {
		t.Fatal("blend leaked outside the box")
	}
	if dev.Enabled(gu.Blend) || !dev.Enabled(gu.Texture2D) {
		t.Fatal("blend should be off and texturing on afterwards")
	}
}

func TestFullListDropsDraw(t *testing.T) {
	c, _, _ := newTestCompositor(t, nearest(ScaleNone))
	c.list = gu.NewList(gu.Direct, 8)
	c.DrawHLine(0, 10, 0, 0xffff)
	c.DrawAlphaBox(0, 0, 10, 10, 0xff0000ff)
	if got := c.Stats().DroppedDraws; got != 2 {
		t.Fatalf("dropped = %d want 2", got)
	}
	if count(c.Back(), 0) != hal.ScreenWidth*hal.ScreenHeight {
		t.Fatal("dropped draws must not touch the frame")
	}
}

// recorded returns the positions and primitive of the last draw in c's list.
func recorded(t *testing.T, c *Compositor) (gu.Primitive, [][2]int) {
	t.Helper()
	cmds := c.list.Commands()
	for i := len(cmds) - 1; i >= 0; i-- {
		cmd := cmds[i]
		if cmd.Op != gu.OpDrawArray {
			continue
		}
		var pts [][2]int
		for _, v := range cmd.Colors16 {
			pts = append(pts, [2]int{int(v.X), int(v.Y)})
		}
		for _, v := range cmd.Colors32 {
			pts = append(pts, [2]int{int(v.X), int(v.Y)})
		}
		return cmd.Prim, pts
	}
	t.Fatal("no draw recorded")
	return 0, nil
}

func TestPrimitiveVerticesUseExclusiveFarEdge(t *testing.T) {
	c, _, _ := newTestCompositor(t, nearest(ScaleNone))
	tests := []struct {
		name string
		draw func()
		prim gu.Primitive
		want [][2]int
	}{
		{"outline", func() { c.DrawOutlineBox(10, 10, 20, 20, 0xffff) }, gu.LineStrip,
			[][2]int{{10, 10}, {21, 10}, {21, 21}, {10, 21}, {10, 10}}},
		{"filled", func() { c.DrawFilledBox(10, 10, 20, 20, 0xffff) }, gu.TriangleStrip,
			[][2]int{{10, 10}, {21, 10}, {10, 21}, {21, 21}}},
		{"alpha", func() { c.DrawAlphaBox(10, 10, 20, 20, 0x80000000) }, gu.TriangleStrip,
			[][2]int{{10, 10}, {21, 10}, {10, 21}, {21, 21}}},
		{"hline", func() { c.DrawHLine(3, 9, 7, 0xffff) }, gu.Lines,
			[][2]int{{3, 7}, {10, 7}}},
		{"vline", func() { c.DrawVLine(7, 3, 9, 0xffff) }, gu.Lines,
			[][2]int{{7, 3}, {7, 10}}},
		{"line", func() { c.DrawLine(1, 2, 5, 8, 0xffff) }, gu.LineStrip,
			[][2]int{{1, 2}, {5, 8}, {6, 8}}},
	}
	for _, tt := range tests {
		tt.draw()
		prim, got := recorded(t, c)
		if prim != tt.prim {
			t.Fatalf("%s: primitive = %s want %s", tt.name, prim, tt.prim)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("%s: vertices = %v want %v", tt.name, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("%s: vertices = %v want %v", tt.name, got, tt.want)
			}
		}
	}
}
