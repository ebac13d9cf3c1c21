// Package video presents the emulated frame on the handheld screen.
//
// The Compositor owns the texture atlas the emulator renders into, the two
// VRAM frames and the graphics device. Each frame the caller fills the
// texture, calls PresentFrame, draws any overlays and then Flip.
package video

import (
	"fmt"

	"screenkit/gu"
	"screenkit/hal"
	"screenkit/internal/buildinfo"
	"screenkit/video/mesh"
	"screenkit/video/scaler"
	"screenkit/video/swapchain"
)

const (
	// Source frame size.
	SourceWidth  = 240
	SourceHeight = 160
	screenWidth  = hal.ScreenWidth
	screenHeight = hal.ScreenHeight

	// AtlasSize is the edge of the square texture. The source frame sits in
	// the top-left corner; the rest holds icons.
	AtlasSize = 256

	// Origin of the software-scaled image in the back buffer.
	swOriginX = (screenWidth - SourceWidth*3/2) / 2
	swOriginY = (screenHeight - SourceHeight*3/2) / 2

	listBytes = 2048
	meshBytes = 1024
)

// Stats counts compositor activity.
type Stats struct {
	Frames       uint64
	ModeSwitches uint64
	// DroppedDraws counts primitives skipped because the list was full.
	DroppedDraws uint64
}

// Compositor draws the source frame and UI primitives into the back buffer.
// It is not safe for concurrent use.
type Compositor struct {
	log     hal.Logger
	display hal.Display
	dev     gu.Device
	swap    *swapchain.SwapChain
	atlas   hal.Surface
	geom    mesh.Geometry
	cfg     Config

	list *gu.List
	mesh *gu.List
	text TextStamper

	stats Stats
}

// New validates cfg and binds the compositor to h's display and dev. The
// device is not touched until Init.
func New(h hal.HAL, dev gu.Device, cfg Config) (*Compositor, error) {
	cfg = cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Compositor{
		log:     h.Logger(),
		display: h.Display(),
		dev:     dev,
		atlas:   hal.NewSurface(AtlasSize, AtlasSize, AtlasSize),
		geom:    mesh.Default,
		cfg:     cfg,
		list:    gu.NewList(gu.Direct, listBytes),
		mesh:    gu.NewList(gu.Call, meshBytes),
		text:    NewFontStamper(DefaultFont()),
	}
	c.swap = swapchain.New(c.display, dev)
	return c, nil
}

// Init configures the device, turns the display on at the next vertical
// blank and compiles the 1.5x stretch. The configured mode takes effect on
// the next ResolutionSmall.
func (c *Compositor) Init() {
	l := c.begin()
	l.Scissor(0, 0, screenWidth, screenHeight)
	l.Enable(gu.ScissorTest)
	l.TexFunc(gu.TexReplace)
	l.TexMode(hal.PixelFormat5551)
	l.TexImage(c.atlas)
	l.TexFlush()
	l.Enable(gu.Texture2D)
	l.BlendFunc(gu.FactorSrcAlpha, gu.FactorOneMinusSrcAlpha)
	l.Disable(gu.Blend)
	c.submit(l)

	c.display.WaitVblankStart()
	c.display.SetEnabled(true)
	c.dev.SetDisplay(true)

	mesh.Compile(c.mesh, c.geom, 1.5, 1.5)
	if c.log != nil {
		c.log.WriteLineString(fmt.Sprintf("video: init %s, mode %s, filter %s",
			buildinfo.Short(), c.cfg.Mode, c.cfg.Filter))
	}
}

// Close turns the display off.
func (c *Compositor) Close() {
	c.dev.SetDisplay(false)
	c.display.SetEnabled(false)
}

// Config returns the active configuration.
func (c *Compositor) Config() Config { return c.cfg }

// SetScaleMode switches the presentation path. Hardware modes recompile the
// stretch list; the software mode does not use one. Outside ScaleUser an
// out-of-range magnification is clamped rather than rejected.
func (c *Compositor) SetScaleMode(mode ScaleMode, magnification int) error {
	cfg := c.cfg
	cfg.Mode = mode
	cfg.Magnification = magnification
	cfg = cfg.normalize()
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.Mode != c.cfg.Mode || cfg.Magnification != c.cfg.Magnification {
		c.stats.ModeSwitches++
	}
	c.cfg = cfg
	c.applyMode()
	return nil
}

func (c *Compositor) applyMode() {
	if c.cfg.Mode == Scale15SW {
		return
	}
	sx, sy := c.cfg.scale()
	mesh.Compile(c.mesh, c.geom, sx, sy)
}

// SetFilter changes texture sampling for the stretch.
func (c *Compositor) SetFilter(f gu.Filter) {
	c.cfg.Filter = f
	l := c.begin()
	l.TexFilter(f)
	c.submit(l)
}

// ResolutionSmall prepares the screen for game output: the active mode is
// applied, the back buffer cleared to black and the filter set.
func (c *Compositor) ResolutionSmall() {
	c.applyMode()
	l := c.begin()
	l.ClearColor(0)
	l.Clear(gu.ColorBufferBit | gu.FastClearBit)
	l.TexFilter(c.cfg.Filter)
	c.submit(l)
}

// ResolutionLarge prepares the screen for full-resolution menus. Menus
// draw at native size so there is nothing to change.
func (c *Compositor) ResolutionLarge() {}

// PresentFrame draws the texture into the back buffer with the active mode
// and waits for the device to finish.
func (c *Compositor) PresentFrame() {
	c.dev.WritebackCache()
	l := c.begin()
	if c.cfg.Mode == Scale15SW {
		l.Clear(gu.ColorBufferBit | gu.FastClearBit)
		c.submit(l)
		scaler.Upscale2x(c.Texture(), c.swap.Back(), swOriginX, swOriginY)
	} else {
		l.CallList(c.mesh)
		c.submit(l)
	}
	c.stats.Frames++
}

// Flip shows the back buffer and retargets drawing at the other frame.
func (c *Compositor) Flip(vsync bool) {
	c.swap.Present(vsync)
}

// Texture is the source frame region of the atlas. Writes become visible to
// the device at the next PresentFrame.
func (c *Compositor) Texture() hal.Surface {
	return c.atlas.Sub(0, 0, SourceWidth, SourceHeight)
}

// Atlas is the whole texture including the icon area.
func (c *Compositor) Atlas() hal.Surface { return c.atlas }

// Back is the frame being drawn.
func (c *Compositor) Back() hal.Surface { return c.swap.Back() }

// Front is the frame on screen.
func (c *Compositor) Front() hal.Surface { return c.swap.Front() }

// Device is the graphics device the compositor submits to.
func (c *Compositor) Device() gu.Device { return c.dev }

func (c *Compositor) Stats() Stats { return c.stats }

// SetTextStamper replaces the font used by PrintString.
func (c *Compositor) SetTextStamper(t TextStamper) {
	if t != nil {
		c.text = t
	}
}

func (c *Compositor) begin() *gu.List {
	c.list.Reset()
	return c.list
}

func (c *Compositor) submit(l *gu.List) {
	c.dev.Execute(l)
	c.dev.Sync()
}
