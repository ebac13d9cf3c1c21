package video

import "screenkit/gu"

// Primitives take inclusive pixel bounds and draw untextured into the back
// buffer. Each call waits for the device before returning. A call whose
// vertices do not fit the list is dropped and counted in Stats.

// DrawLine draws from (x1,y1) to (x2,y2) including both end points.
func (c *Compositor) DrawLine(x1, y1, x2, y2 int, color uint16) {
	// Strip segments stop short of their end, so a one pixel tail plots (x2,y2).
	c.primitive16(gu.LineStrip, color, [][2]int{{x1, y1}, {x2, y2}, {x2 + 1, y2}})
}

// DrawOutlineBox draws the one pixel border of [x1,x2] x [y1,y2].
func (c *Compositor) DrawOutlineBox(x1, y1, x2, y2 int, color uint16) {
	c.primitive16(gu.LineStrip, color, [][2]int{
		{x1, y1}, {x2 + 1, y1}, {x2 + 1, y2 + 1}, {x1, y2 + 1}, {x1, y1},
	})
}

// DrawFilledBox fills [x1,x2] x [y1,y2].
func (c *Compositor) DrawFilledBox(x1, y1, x2, y2 int, color uint16) {
	c.primitive16(gu.TriangleStrip, color, boxStrip(x1, y1, x2, y2))
}

// DrawHLine draws row y from sx to ex.
func (c *Compositor) DrawHLine(sx, ex, y int, color uint16) {
	c.primitive16(gu.Lines, color, [][2]int{{sx, y}, {ex + 1, y}})
}

// DrawVLine draws column x from sy to ey.
func (c *Compositor) DrawVLine(x, sy, ey int, color uint16) {
	c.primitive16(gu.Lines, color, [][2]int{{x, sy}, {x, ey + 1}})
}

// DrawAlphaBox blends a 0xAABBGGRR colour over [x1,x2] x [y1,y2].
func (c *Compositor) DrawAlphaBox(x1, y1, x2, y2 int, color uint32) {
	l := c.begin()
	l.Disable(gu.Texture2D)
	l.Enable(gu.Blend)
	pts := boxStrip(x1, y1, x2, y2)
	if v := l.ColorVertices32(len(pts)); v != nil {
		for i, p := range pts {
			v[i] = gu.ColorVertex32{Color: color, X: int16(p[0]), Y: int16(p[1])}
		}
		l.DrawColor32(gu.TriangleStrip, v)
	} else {
		c.stats.DroppedDraws++
	}
	l.Disable(gu.Blend)
	l.Enable(gu.Texture2D)
	c.submit(l)
}

func boxStrip(x1, y1, x2, y2 int) [][2]int {
	return [][2]int{{x1, y1}, {x2 + 1, y1}, {x1, y2 + 1}, {x2 + 1, y2 + 1}}
}

func (c *Compositor) primitive16(p gu.Primitive, color uint16, pts [][2]int) {
	l := c.begin()
	l.Disable(gu.Texture2D)
	if v := l.ColorVertices16(len(pts)); v != nil {
		for i, pt := range pts {
			v[i] = gu.ColorVertex16{Color: color, X: int16(pt[0]), Y: int16(pt[1])}
		}
		l.DrawColor16(p, v)
	} else {
		c.stats.DroppedDraws++
	}
	l.Enable(gu.Texture2D)
	c.submit(l)
}
