package overlay

import (
	"screenkit/gu"
	"screenkit/hal"
	"screenkit/video/icons"
)

const (
	// MaxLevel is the highest system volume.
	MaxLevel = 30
	// ShowMicros is how long the indicator stays up after a volume button.
	ShowMicros = 2_000_000

	// Triggers are the buttons that bring the indicator up.
	Triggers = hal.ButtonVolUp | hal.ButtonVolDown | hal.ButtonNote

	speakerLeft  = 24
	top          = 230
	slotLeft     = 64
	shadowOffset = 3

	// Sprites per frame: speaker plus one per level slot, each with a shadow.
	Sprites = 2 * (1 + MaxLevel)

	listBytes = 2048
)

// Volume shows the volume level for two seconds after a volume button is
// seen held.
type Volume struct {
	dev    gu.Device
	clock  hal.Clock
	input  hal.Input
	volume hal.VolumeControl
	list   *gu.List

	deadline uint64
	draws    uint64
}

func NewVolume(dev gu.Device, clock hal.Clock, input hal.Input, volume hal.VolumeControl) *Volume {
	return &Volume{
		dev:    dev,
		clock:  clock,
		input:  input,
		volume: volume,
		list:   gu.NewList(gu.Direct, listBytes),
	}
}

// Visible reports whether a deadline is pending.
func (v *Volume) Visible() bool { return v.deadline != 0 }

// Deadline is the clock value at which the indicator hides, or 0.
func (v *Volume) Deadline() uint64 { return v.deadline }

// Draws counts rendered frames.
func (v *Volume) Draws() uint64 { return v.draws }

// Tick does nothing while the volume level is unavailable. A held trigger
// restarts the window and forces drawing; once the window has passed the
// deadline is cleared.
func (v *Volume) Tick(draw bool) {
	level := v.volume.Level()
	if level < 0 || level > MaxLevel {
		return
	}
	now := v.clock.Micros()
	if v.input.Buttons()&Triggers != 0 {
		v.deadline = now + ShowMicros
		draw = true
	}
	if v.deadline == 0 {
		return
	}
	if now >= v.deadline {
		v.deadline = 0
		return
	}
	if draw {
		v.Draw(level)
	}
}

// Draw renders the indicator for level with alpha blending over the
// current draw buffer.
func (v *Volume) Draw(level int) {
	v.dev.WritebackCache()

	l := v.list
	l.Reset()
	l.Enable(gu.Blend)
	l.TexMode(hal.PixelFormat4444)
	if verts := l.Vertices(2 * Sprites); verts != nil {
		fill(verts, level)
		l.DrawTextured(gu.Sprites, verts)
	}
	l.Disable(gu.Blend)
	l.TexMode(hal.PixelFormat5551)

	v.dev.Execute(l)
	v.dev.Sync()
	v.draws++
}

// fill lays out shadow-then-icon sprite pairs: the speaker, then level bars,
// then dots for the remaining slots.
func fill(verts []gu.Vertex, level int) {
	put := func(i, u, w, x int) {
		verts[i] = gu.Vertex{U: uint16(u), V: IconRow, X: int16(x), Y: top}
		verts[i+1] = gu.Vertex{U: uint16(u + w), V: IconRow + icons.Height, X: int16(x + w), Y: top + icons.Height}
	}
	slot := func(i, icon, shadow, w, x int) {
		put(i, shadow, w, x+shadowOffset)
		for _, k := range []int{i, i + 1} {
			verts[k].Y += shadowOffset
		}
		put(i+2, icon, w, x)
	}

	slot(0, speakerX, speakerShadowX, icons.SpeakerWidth, speakerLeft)
	x := slotLeft
	for n := 0; n < MaxLevel; n++ {
		i := 4 + 4*n
		if n < level {
			slot(i, barX, barShadowX, icons.SlotWidth, x)
		} else {
			slot(i, dotX, dotShadowX, icons.SlotWidth, x)
		}
		x += icons.SlotWidth
	}
}
