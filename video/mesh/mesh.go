// Package mesh compiles the replayable command list that stretches the
// source texture onto the screen.
package mesh

import "screenkit/gu"

// Geometry fixes the source and screen sizes and the slice width.
type Geometry struct {
	SourceWidth  int
	SourceHeight int
	ScreenWidth  int
	ScreenHeight int
	// Slice is the width in texels of one vertical strip. Narrow strips keep
	// texture reads inside the device's texture cache.
	Slice int
}

// Default is the console-to-handheld geometry.
var Default = Geometry{
	SourceWidth:  240,
	SourceHeight: 160,
	ScreenWidth:  480,
	ScreenHeight: 272,
	Slice:        64,
}

// Rect maps texels [U0,U1) x [V0,V1) onto pixels [X0,X1) x [Y0,Y1).
type Rect struct {
	U0, V0, U1, V1 int
	X0, Y0, X1, Y1 int
}

// Target returns the destination rectangle covered at the given scale,
// centred on the screen.
func Target(g Geometry, scaleX, scaleY float32) (x, y, w, h int) {
	w = int(float32(g.SourceWidth) * scaleX)
	h = int(float32(g.SourceHeight) * scaleY)
	return (g.ScreenWidth - w) / 2, (g.ScreenHeight - h) / 2, w, h
}

// Layout splits the source into Slice-wide strips. Strip edges are shared
// so the strips tile the target rectangle without gaps; the last strip ends
// exactly at the right edge of the target.
func Layout(g Geometry, scaleX, scaleY float32) []Rect {
	if g.Slice <= 0 || g.SourceWidth <= 0 || g.SourceHeight <= 0 {
		return nil
	}
	dx, dy, dw, dh := Target(g, scaleX, scaleY)
	rects := make([]Rect, 0, (g.SourceWidth+g.Slice-1)/g.Slice)

	i := 0
	for ; i+g.Slice < g.SourceWidth; i += g.Slice {
		rects = append(rects, Rect{
			U0: i, V0: 0, U1: i + g.Slice, V1: g.SourceHeight,
			X0: dx + int(float32(i)*scaleX), Y0: dy,
			X1: dx + int(float32(i+g.Slice)*scaleX), Y1: dy + dh,
		})
	}
	return append(rects, Rect{
		U0: i, V0: 0, U1: g.SourceWidth, V1: g.SourceHeight,
		X0: dx + int(float32(i)*scaleX), Y0: dy,
		X1: dx + dw, Y1: dy + dh,
	})
}

// Compile resets l and records a fast clear followed by one sprite per
// strip. If l cannot hold the vertices only the clear is recorded.
func Compile(l *gu.List, g Geometry, scaleX, scaleY float32) {
	l.Reset()
	l.Clear(gu.ColorBufferBit | gu.FastClearBit)

	rects := Layout(g, scaleX, scaleY)
	v := l.Vertices(2 * len(rects))
	if v == nil {
		return
	}
	for i, r := range rects {
		v[2*i] = gu.Vertex{U: uint16(r.U0), V: uint16(r.V0), X: int16(r.X0), Y: int16(r.Y0)}
		v[2*i+1] = gu.Vertex{U: uint16(r.U1), V: uint16(r.V1), X: int16(r.X1), Y: int16(r.Y1)}
	}
	l.DrawTextured(gu.Sprites, v)
}
