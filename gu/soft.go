package gu

import (
	"image/color"
	"math"

	"screenkit/hal"
)

// maxCallDepth bounds nested CallList replays.
const maxCallDepth = 8

// SoftDevice executes lists on the CPU into a 5551 draw buffer.
//
// Texture reads see the texture memory as it was at the last
// WritebackCache; CPU writes made after that stay invisible. A texture
// bound after a writeback sees the memory as it is at bind time.
type SoftDevice struct {
	draw    hal.Surface
	display bool
	flushed bool

	clear   uint32
	states  [numStates]bool
	format  hal.PixelFormat
	tex     hal.Surface
	view    []uint16
	filter  Filter
	texFunc TexFunction
	srcF    BlendFactor
	dstF    BlendFactor
	scissor [4]int

	stats Stats
}

// NewSoftDevice returns a device with every state disabled, 5551 texturing
// and source-alpha blending configured.
func NewSoftDevice() *SoftDevice {
	return &SoftDevice{
		format:  hal.PixelFormat5551,
		srcF:    FactorSrcAlpha,
		dstF:    FactorOneMinusSrcAlpha,
		scissor: [4]int{0, 0, math.MaxInt32, math.MaxInt32},
	}
}

func (d *SoftDevice) SetDrawBuffer(s hal.Surface) { d.draw = s }
func (d *SoftDevice) DrawBuffer() hal.Surface     { return d.draw }
func (d *SoftDevice) SetDisplay(on bool)          { d.display = on }
func (d *SoftDevice) DisplayOn() bool             { return d.display }
func (d *SoftDevice) Stats() Stats                { return d.stats }

func (d *SoftDevice) Enabled(s State) bool {
	if s >= numStates {
		return false
	}
	return d.states[s]
}

func (d *SoftDevice) TexFormat() hal.PixelFormat { return d.format }

func (d *SoftDevice) WritebackCache() {
	d.stats.Writebacks++
	d.flushed = true
	if d.tex.Pix == nil {
		return
	}
	if len(d.view) != len(d.tex.Pix) {
		d.view = make([]uint16, len(d.tex.Pix))
	}
	copy(d.view, d.tex.Pix)
}

// bind makes s the texture. Rebinding the same memory keeps the current
// view.
func (d *SoftDevice) bind(s hal.Surface) {
	same := len(s.Pix) == len(d.tex.Pix) && len(s.Pix) > 0 && &s.Pix[0] == &d.tex.Pix[0]
	d.tex = s
	if same {
		return
	}
	d.view = make([]uint16, len(s.Pix))
	if d.flushed {
		copy(d.view, s.Pix)
	}
}

func (d *SoftDevice) Execute(l *List) {
	d.stats.Lists++
	d.run(l, 0)
}

// Sync returns immediately; lists complete inside Execute.
func (d *SoftDevice) Sync() { d.stats.Syncs++ }

func (d *SoftDevice) run(l *List, depth int) {
	if l == nil || depth > maxCallDepth {
		return
	}
	for i := range l.cmds {
		c := &l.cmds[i]
		switch c.Op {
		case OpClear:
			if ClearFlags(c.Arg)&ColorBufferBit != 0 {
				d.fillClear()
			}
		case OpClearColor:
			d.clear = c.Arg
		case OpEnable, OpDisable:
			if s := State(c.Arg); s < numStates {
				d.states[s] = c.Op == OpEnable
			}
		case OpTexMode:
			d.format = hal.PixelFormat(c.Arg)
		case OpTexImage:
			d.bind(c.Texture)
		case OpTexFilter:
			d.filter = Filter(c.Arg)
		case OpTexFunc:
			d.texFunc = TexFunction(c.Arg)
		case OpBlendFunc:
			d.srcF, d.dstF = BlendFactor(c.Arg), BlendFactor(c.Arg>>8)
		case OpScissor:
			d.scissor = c.Rect
		case OpTexFlush:
		case OpDrawArray:
			d.stats.Draws++
			d.drawArray(c)
		case OpCallList:
			d.run(c.List, depth+1)
		}
	}
}

type point struct {
	x, y int
	u, v int
	c    color.RGBA
}

func points(c *Command) []point {
	var pts []point
	switch c.Type {
	case Textured:
		pts = make([]point, len(c.Vertices))
		for i, v := range c.Vertices {
			pts[i] = point{x: int(v.X), y: int(v.Y), u: int(v.U), v: int(v.V), c: color.RGBA{0xff, 0xff, 0xff, 0xff}}
		}
	case Color5551:
		pts = make([]point, len(c.Colors16))
		for i, v := range c.Colors16 {
			pts[i] = point{x: int(v.X), y: int(v.Y), c: hal.RGBAFrom5551(v.Color)}
		}
	case Color8888:
		pts = make([]point, len(c.Colors32))
		for i, v := range c.Colors32 {
			pts[i] = point{x: int(v.X), y: int(v.Y), c: hal.RGBAFrom8888(v.Color)}
		}
	}
	return pts
}

func (d *SoftDevice) drawArray(c *Command) {
	pts := points(c)
	textured := c.Type == Textured && d.states[Texture2D]
	switch c.Prim {
	case Sprites:
		for i := 0; i+1 < len(pts); i += 2 {
			if textured {
				d.texturedSprite(pts[i], pts[i+1])
			} else {
				d.flatSprite(pts[i], pts[i+1])
			}
		}
	case TriangleStrip:
		for i := 2; i < len(pts); i++ {
			d.triangle(pts[i-2], pts[i-1], pts[i])
		}
	case Lines:
		for i := 0; i+1 < len(pts); i += 2 {
			d.segment(pts[i], pts[i+1], pts[i+1].c)
		}
	case LineStrip:
		d.lineStrip(pts)
	}
}

// clip returns the writable rectangle [x0,x1) x [y0,y1).
func (d *SoftDevice) clip() (x0, y0, x1, y1 int) {
	x0, y0, x1, y1 = 0, 0, d.draw.Width, d.draw.Height
	if d.states[ScissorTest] {
		x0, y0 = max(x0, d.scissor[0]), max(y0, d.scissor[1])
		x1, y1 = min(x1, d.scissor[2]), min(y1, d.scissor[3])
	}
	return x0, y0, x1, y1
}

func (d *SoftDevice) fillClear() {
	p := hal.RGB5551FromRGBA(hal.RGBAFrom8888(d.clear))
	x0, y0, x1, y1 := d.clip()
	for y := y0; y < y1; y++ {
		row := d.draw.Pix[y*d.draw.Pitch : y*d.draw.Pitch+x1]
		for x := x0; x < x1; x++ {
			row[x] = p
		}
	}
}

func (d *SoftDevice) plot(x, y int, c color.RGBA) {
	x0, y0, x1, y1 := d.clip()
	if x < x0 || y < y0 || x >= x1 || y >= y1 {
		return
	}
	i := y*d.draw.Pitch + x
	if d.states[Blend] {
		dst := hal.RGBAFrom5551(d.draw.Pix[i])
		fs, fd := factor(d.srcF, c.A), factor(d.dstF, c.A)
		c = color.RGBA{
			R: mix(c.R, dst.R, fs, fd),
			G: mix(c.G, dst.G, fs, fd),
			B: mix(c.B, dst.B, fs, fd),
			A: mix(c.A, dst.A, fs, fd),
		}
	}
	d.draw.Pix[i] = hal.RGB5551FromRGBA(c)
}

func factor(f BlendFactor, srcA uint8) uint32 {
	switch f {
	case FactorOne:
		return 255
	case FactorSrcAlpha:
		return uint32(srcA)
	case FactorOneMinusSrcAlpha:
		return 255 - uint32(srcA)
	default:
		return 0
	}
}

func mix(s, d uint8, fs, fd uint32) uint8 {
	v := (uint32(s)*fs + uint32(d)*fd + 127) / 255
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func (d *SoftDevice) texel(x, y int) color.RGBA {
	x = clamp(x, 0, d.tex.Width-1)
	y = clamp(y, 0, d.tex.Height-1)
	i := y*d.tex.Pitch + x
	if i < 0 || i >= len(d.view) {
		return color.RGBA{}
	}
	var c color.RGBA
	if d.format == hal.PixelFormat4444 {
		c = hal.RGBAFrom4444(d.view[i])
	} else {
		c = hal.RGBAFrom5551(d.view[i])
	}
	if d.texFunc == TexReplaceRGB {
		c.A = 0xff
	}
	return c
}

// sample reads the texture at continuous texel coordinates (u, v), where
// texel centres sit at half-integers.
func (d *SoftDevice) sample(u, v float32) color.RGBA {
	if d.filter != Linear {
		return d.texel(int(floor(u)), int(floor(v)))
	}
	fu, fv := u-0.5, v-0.5
	tx, ty := floor(fu), floor(fv)
	ax, ay := fu-tx, fv-ty
	x, y := int(tx), int(ty)
	c00, c10 := d.texel(x, y), d.texel(x+1, y)
	c01, c11 := d.texel(x, y+1), d.texel(x+1, y+1)
	lerp := func(a, b, c, e uint8) uint8 {
		top := float32(a) + (float32(b)-float32(a))*ax
		bot := float32(c) + (float32(e)-float32(c))*ax
		return uint8(top + (bot-top)*ay + 0.5)
	}
	return color.RGBA{
		R: lerp(c00.R, c10.R, c01.R, c11.R),
		G: lerp(c00.G, c10.G, c01.G, c11.G),
		B: lerp(c00.B, c10.B, c01.B, c11.B),
		A: lerp(c00.A, c10.A, c01.A, c11.A),
	}
}

func (d *SoftDevice) texturedSprite(a, b point) {
	if b.x < a.x {
		a.x, b.x = b.x, a.x
		a.u, b.u = b.u, a.u
	}
	if b.y < a.y {
		a.y, b.y = b.y, a.y
		a.v, b.v = b.v, a.v
	}
	if a.x == b.x || a.y == b.y {
		return
	}
	x0, y0, x1, y1 := d.clip()
	du := float32(b.u-a.u) / float32(b.x-a.x)
	dv := float32(b.v-a.v) / float32(b.y-a.y)
	for y := max(a.y, y0); y < min(b.y, y1); y++ {
		v := float32(a.v) + (float32(y-a.y)+0.5)*dv
		for x := max(a.x, x0); x < min(b.x, x1); x++ {
			u := float32(a.u) + (float32(x-a.x)+0.5)*du
			d.plot(x, y, d.sample(u, v))
		}
	}
}

func (d *SoftDevice) flatSprite(a, b point) {
	for y := min(a.y, b.y); y < max(a.y, b.y); y++ {
		for x := min(a.x, b.x); x < max(a.x, b.x); x++ {
			d.plot(x, y, b.c)
		}
	}
}

// triangle fills the pixels whose centres fall inside abc. Centres on a
// shared edge go to exactly one of the two triangles.
func (d *SoftDevice) triangle(a, b, c point) {
	// Work in doubled coordinates so pixel centres are integers.
	ax, ay, bx, by, cx, cy := 2*a.x, 2*a.y, 2*b.x, 2*b.y, 2*c.x, 2*c.y
	area := edge(ax, ay, bx, by, cx, cy)
	if area == 0 {
		return
	}
	if area < 0 {
		bx, by, cx, cy = cx, cy, bx, by
	}
	x0, y0, x1, y1 := d.clip()
	minX, maxX := max(min(a.x, b.x, c.x), x0), min(max(a.x, b.x, c.x), x1)
	minY, maxY := max(min(a.y, b.y, c.y), y0), min(max(a.y, b.y, c.y), y1)
	for y := minY; y < maxY; y++ {
		py := 2*y + 1
		for x := minX; x < maxX; x++ {
			px := 2*x + 1
			if covers(bx, by, cx, cy, px, py) && covers(cx, cy, ax, ay, px, py) && covers(ax, ay, bx, by, px, py) {
				d.plot(x, y, c.c)
			}
		}
	}
}

func edge(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func covers(ax, ay, bx, by, px, py int) bool {
	w := edge(ax, ay, bx, by, px, py)
	if w != 0 {
		return w > 0
	}
	dx, dy := bx-ax, by-ay
	return dy < 0 || (dy == 0 && dx > 0)
}

// segment plots a to b, leaving b itself unplotted.
func (d *SoftDevice) segment(a, b point, c color.RGBA) {
	dx, sx := abs(b.x-a.x), sign(b.x-a.x)
	dy, sy := -abs(b.y-a.y), sign(b.y-a.y)
	err := dx + dy
	x, y := a.x, a.y
	for x != b.x || y != b.y {
		d.plot(x, y, c)
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// lineStrip draws an open strip as half-open segments. A closed strip
// traces the border of the region it encloses: axis-aligned edges light
// the pixel row or column on the inside.
func (d *SoftDevice) lineStrip(pts []point) {
	n := len(pts)
	closed := n >= 4 && pts[0].x == pts[n-1].x && pts[0].y == pts[n-1].y
	area := 0
	if closed {
		for i := 0; i+1 < n; i++ {
			area += pts[i].x*pts[i+1].y - pts[i+1].x*pts[i].y
		}
	}
	for i := 0; i+1 < n; i++ {
		a, b := pts[i], pts[i+1]
		switch {
		case area != 0 && a.y == b.y && a.x != b.x:
			row := a.y
			if (b.x > a.x) != (area > 0) {
				row--
			}
			for x := min(a.x, b.x); x < max(a.x, b.x); x++ {
				d.plot(x, row, b.c)
			}
		case area != 0 && a.x == b.x && a.y != b.y:
			col := a.x
			if (b.y > a.y) == (area > 0) {
				col--
			}
			for y := min(a.y, b.y); y < max(a.y, b.y); y++ {
				d.plot(col, y, b.c)
			}
		default:
			d.segment(a, b, b.c)
		}
	}
}

func floor(v float32) float32 { return float32(math.Floor(float64(v))) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
