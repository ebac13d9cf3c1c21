package gu

import "screenkit/hal"

// Op is a recorded command opcode.
type Op uint8

const (
	OpClear Op = iota + 1
	OpClearColor
	OpEnable
	OpDisable
	OpTexMode
	OpTexImage
	OpTexFilter
	OpTexFunc
	OpBlendFunc
	OpScissor
	OpTexFlush
	OpDrawArray
	OpCallList
)

// Command is one recorded instruction. Only the fields used by Op are set.
type Command struct {
	Op   Op
	Arg  uint32
	Rect [4]int

	Prim     Primitive
	Type     VertexType
	Vertices []Vertex
	Colors16 []ColorVertex16
	Colors32 []ColorVertex32

	Texture hal.Surface
	List    *List
}

// Count returns the number of vertices a draw command references.
func (c Command) Count() int {
	switch c.Type {
	case Textured:
		return len(c.Vertices)
	case Color5551:
		return len(c.Colors16)
	case Color8888:
		return len(c.Colors32)
	}
	return 0
}

// List is a fixed-capacity command buffer. Vertex memory is allocated from
// the same capacity; once it runs out the allocators return nil.
type List struct {
	kind     Kind
	capacity int
	used     int
	cmds     []Command
}

// NewList returns an empty list of the given kind and byte capacity.
func NewList(kind Kind, capacity int) *List {
	return &List{kind: kind, capacity: capacity, cmds: make([]Command, 0, 32)}
}

func (l *List) Kind() Kind { return l.kind }

// Cap is the byte capacity of the list.
func (l *List) Cap() int { return l.capacity }

// Used is the number of bytes taken by commands and vertex data.
func (l *List) Used() int { return l.used }

// Commands returns the recorded commands. The slice is owned by the list.
func (l *List) Commands() []Command { return l.cmds }

// Reset empties the list for reuse.
func (l *List) Reset() {
	for i := range l.cmds {
		l.cmds[i] = Command{}
	}
	l.cmds = l.cmds[:0]
	l.used = 0
}

// Clone returns a deep copy that later Resets cannot affect.
func (l *List) Clone() *List {
	c := &List{kind: l.kind, capacity: l.capacity, used: l.used, cmds: make([]Command, len(l.cmds))}
	for i, cmd := range l.cmds {
		cmd.Vertices = append([]Vertex(nil), cmd.Vertices...)
		cmd.Colors16 = append([]ColorVertex16(nil), cmd.Colors16...)
		cmd.Colors32 = append([]ColorVertex32(nil), cmd.Colors32...)
		c.cmds[i] = cmd
	}
	return c
}

func (l *List) record(c Command, words int) {
	l.used += words * commandBytes
	l.cmds = append(l.cmds, c)
}

func (l *List) reserve(n int) bool {
	need := (n+3)&^3 + jumpBytes
	if l.used+need > l.capacity {
		return false
	}
	l.used += need
	return true
}

// Vertices allocates n textured vertices, or returns nil when the list is full.
func (l *List) Vertices(n int) []Vertex {
	if n <= 0 || !l.reserve(n*vertexSize) {
		return nil
	}
	return make([]Vertex, n)
}

// ColorVertices16 allocates n 5551 colour vertices, or returns nil when the list is full.
func (l *List) ColorVertices16(n int) []ColorVertex16 {
	if n <= 0 || !l.reserve(n*color16Size) {
		return nil
	}
	return make([]ColorVertex16, n)
}

// ColorVertices32 allocates n 8888 colour vertices, or returns nil when the list is full.
func (l *List) ColorVertices32(n int) []ColorVertex32 {
	if n <= 0 || !l.reserve(n*color32Size) {
		return nil
	}
	return make([]ColorVertex32, n)
}

func (l *List) Clear(flags ClearFlags) {
	l.record(Command{Op: OpClear, Arg: uint32(flags)}, 1)
}

// ClearColor sets the 0xAABBGGRR colour used by Clear.
func (l *List) ClearColor(c uint32) {
	l.record(Command{Op: OpClearColor, Arg: c}, 1)
}

func (l *List) Enable(s State)  { l.record(Command{Op: OpEnable, Arg: uint32(s)}, 1) }
func (l *List) Disable(s State) { l.record(Command{Op: OpDisable, Arg: uint32(s)}, 1) }

// TexMode sets how texture memory is interpreted.
func (l *List) TexMode(f hal.PixelFormat) {
	l.record(Command{Op: OpTexMode, Arg: uint32(f)}, 1)
}

// TexImage binds s as the texture. Coordinates address the whole surface.
func (l *List) TexImage(s hal.Surface) {
	l.record(Command{Op: OpTexImage, Texture: s}, 4)
}

func (l *List) TexFilter(f Filter) {
	l.record(Command{Op: OpTexFilter, Arg: uint32(f)}, 1)
}

func (l *List) TexFunc(fn TexFunction) {
	l.record(Command{Op: OpTexFunc, Arg: uint32(fn)}, 1)
}

// BlendFunc sets the additive blend factors for source and destination.
func (l *List) BlendFunc(src, dst BlendFactor) {
	l.record(Command{Op: OpBlendFunc, Arg: uint32(src) | uint32(dst)<<8}, 1)
}

// Scissor limits drawing to [x0,x1) x [y0,y1) while ScissorTest is enabled.
func (l *List) Scissor(x0, y0, x1, y1 int) {
	l.record(Command{Op: OpScissor, Rect: [4]int{x0, y0, x1, y1}}, 2)
}

func (l *List) TexFlush() { l.record(Command{Op: OpTexFlush}, 1) }

func (l *List) DrawTextured(p Primitive, v []Vertex) {
	if len(v) == 0 {
		return
	}
	l.record(Command{Op: OpDrawArray, Prim: p, Type: Textured, Vertices: v}, 3)
}

func (l *List) DrawColor16(p Primitive, v []ColorVertex16) {
	if len(v) == 0 {
		return
	}
	l.record(Command{Op: OpDrawArray, Prim: p, Type: Color5551, Colors16: v}, 3)
}

func (l *List) DrawColor32(p Primitive, v []ColorVertex32) {
	if len(v) == 0 {
		return
	}
	l.record(Command{Op: OpDrawArray, Prim: p, Type: Color8888, Colors32: v}, 3)
}

// CallList replays sub when this list executes.
func (l *List) CallList(sub *List) {
	l.record(Command{Op: OpCallList, List: sub}, 2)
}
