// Package overlay draws the system volume indicator over the presented frame.
package overlay

import (
	"fmt"

	"screenkit/gu"
	"screenkit/hal"
	"screenkit/video/icons"
)

// MinFirmware is the first system software version that reports the
// volume level to applications.
const MinFirmware = 0x03050210

// Supported reports whether the overlay can run on firmware.
func Supported(firmware uint32) bool { return firmware >= MinFirmware }

// Atlas placement. Icons live below the visible source frame.
const (
	IconRow = 160 + 32

	speakerX       = 0
	speakerShadowX = 32
	barX           = 64
	barShadowX     = 76
	dotX           = 88
	dotShadowX     = 100
	atlasWidth     = dotShadowX + icons.SlotWidth
)

// Load unpacks set into the atlas rows starting at IconRow. Icons become
// white with the bitmap as alpha; shadows become black.
func Load(atlas hal.Surface, set icons.Set) error {
	if err := set.Validate(); err != nil {
		return err
	}
	if atlas.Width < atlasWidth || atlas.Height < IconRow+icons.Height {
		return fmt.Errorf("overlay: atlas %dx%d too small", atlas.Width, atlas.Height)
	}
	unpack(atlas, speakerX, set.Speaker, 0x0fff)
	unpack(atlas, speakerShadowX, set.SpeakerShadow, 0)
	unpack(atlas, barX, set.Bar, 0x0fff)
	unpack(atlas, barShadowX, set.BarShadow, 0)
	unpack(atlas, dotX, set.Dot, 0x0fff)
	unpack(atlas, dotShadowX, set.DotShadow, 0)
	return nil
}

func unpack(atlas hal.Surface, x0 int, b icons.Bitmap, rgb uint16) {
	for y := 0; y < b.Height; y++ {
		row := atlas.Pix[atlas.Offset(x0, IconRow+y):]
		for x := 0; x < b.Width; x++ {
			row[x] = uint16(b.Alpha(x, y))<<12 | rgb
		}
	}
}

// Hook runs once per presented frame. draw false advances timers without
// rendering.
type Hook interface {
	Tick(draw bool)
}

// Null is the hook used where the overlay is unsupported.
type Null struct{}

func (Null) Tick(bool) {}

// New returns a Volume hook when supported, otherwise Null.
func New(supported bool, dev gu.Device, clock hal.Clock, input hal.Input, volume hal.VolumeControl) Hook {
	if !supported {
		return Null{}
	}
	return NewVolume(dev, clock, input, volume)
}
