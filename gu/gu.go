// Package gu records and executes graphics command lists.
//
// A List is a fixed-capacity buffer of rendering commands whose vertex data
// is carved out of the same buffer. A Device consumes lists; SoftDevice is a
// software implementation that rasterises into a 5551 draw buffer.
package gu

import (
	"fmt"
	"strings"
)

// Kind selects how a list is submitted.
type Kind uint8

const (
	// Direct lists are built, executed once and reset.
	Direct Kind = iota + 1
	// Call lists are compiled once and replayed from other lists.
	Call
)

// State is a toggleable pipeline state.
type State uint8

const (
	Texture2D State = iota
	Blend
	ScissorTest
	numStates
)

func (s State) String() string {
	switch s {
	case Texture2D:
		return "texture2d"
	case Blend:
		return "blend"
	case ScissorTest:
		return "scissor"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// ClearFlags select what Clear touches.
type ClearFlags uint8

const (
	ColorBufferBit ClearFlags = 1 << iota
	FastClearBit
)

// Primitive is the topology of a vertex array.
type Primitive uint8

const (
	// Lines draws independent segments from vertex pairs.
	Lines Primitive = iota + 1
	// LineStrip connects consecutive vertices with half-open segments. A
	// strip of four or more vertices whose last vertex equals its first is a
	// closed loop: its vertices are pixel corners and the border pixels just
	// inside the enclosed region are lit.
	LineStrip
	TriangleStrip
	// Sprites draws an axis-aligned rectangle per vertex pair.
	Sprites
)

func (p Primitive) String() string {
	switch p {
	case Lines:
		return "lines"
	case LineStrip:
		return "linestrip"
	case TriangleStrip:
		return "tristrip"
	case Sprites:
		return "sprites"
	default:
		return fmt.Sprintf("prim(%d)", uint8(p))
	}
}

// VertexType identifies the element type of a vertex array.
type VertexType uint8

const (
	// Textured vertices carry 16-bit texture coordinates and positions.
	Textured VertexType = iota + 1
	// Color5551 vertices carry a 16-bit colour.
	Color5551
	// Color8888 vertices carry a 32-bit 0xAABBGGRR colour.
	Color8888
)

// Vertex is a textured vertex in screen coordinates.
type Vertex struct {
	U, V    uint16
	X, Y, Z int16
}

// ColorVertex16 is an untextured vertex with a 5551 colour.
type ColorVertex16 struct {
	Color   uint16
	X, Y, Z int16
}

// ColorVertex32 is an untextured vertex with an 8888 colour.
type ColorVertex32 struct {
	Color   uint32
	X, Y, Z int16
}

// Vertex sizes as laid out in list memory.
const (
	vertexSize   = 10
	color16Size  = 8
	color32Size  = 12
	commandBytes = 4
	// Every inline allocation is skipped over with a jump.
	jumpBytes = 8
)

// Filter selects texture sampling.
type Filter uint8

const (
	Nearest Filter = iota
	Linear
)

func (f Filter) String() string {
	if f == Linear {
		return "linear"
	}
	return "nearest"
}

// ParseFilter accepts "nearest" or "linear".
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "":
		return Nearest, nil
	case "linear":
		return Linear, nil
	default:
		return Nearest, fmt.Errorf("gu: unknown filter %q", s)
	}
}

// TexFunction combines texels with the fragment colour.
type TexFunction uint8

const (
	// TexReplace uses the texel including its alpha.
	TexReplace TexFunction = iota
	// TexReplaceRGB uses the texel colour and forces full alpha.
	TexReplaceRGB
)

// BlendFactor weights a blend operand.
type BlendFactor uint8

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
)
