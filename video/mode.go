package video

import (
	"errors"
	"fmt"
	"strings"

	"screenkit/gu"
)

var (
	ErrInvalidMode          = errors.New("video: invalid scale mode")
	ErrInvalidMagnification = errors.New("video: magnification out of range")
	ErrUnknownFormat        = errors.New("video: unknown image format")
)

// ScaleMode selects how the source frame reaches the screen.
type ScaleMode uint8

const (
	// ScaleNone draws the frame 1:1, centred.
	ScaleNone ScaleMode = iota
	// Scale15HW stretches by 1.5 with the compiled sprite list.
	Scale15HW
	// Scale15SW runs the CPU 2x3 upscaler into the back buffer.
	Scale15SW
	// ScaleUser stretches by the configured magnification.
	ScaleUser
	// ScaleFit stretches each axis independently to fill the screen.
	ScaleFit
	numScaleModes
)

var scaleModeNames = [numScaleModes]string{"none", "1.5hw", "1.5sw", "user", "fit"}

func (m ScaleMode) String() string {
	if m < numScaleModes {
		return scaleModeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Next cycles through the modes in declaration order.
func (m ScaleMode) Next() ScaleMode {
	return (m + 1) % numScaleModes
}

func ParseScaleMode(s string) (ScaleMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range scaleModeNames {
		if s == name {
			return ScaleMode(i), nil
		}
	}
	return ScaleNone, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Magnification bounds for ScaleUser, in percent.
const (
	MinMagnification     = 10
	MaxMagnification     = 400
	DefaultMagnification = 150
)

// Config is the user-facing video configuration.
type Config struct {
	Mode ScaleMode
	// Magnification is used by ScaleUser, in percent.
	Magnification int
	Filter        gu.Filter
}

// DefaultConfig is the hardware 1.5x stretch with bilinear filtering.
func DefaultConfig() Config {
	return Config{Mode: Scale15HW, Magnification: DefaultMagnification, Filter: gu.Linear}
}

// normalize brings the magnification of a non-user mode into range so that
// a later switch to ScaleUser starts from a valid value. Zero selects
// DefaultMagnification.
func (c Config) normalize() Config {
	if c.Mode == ScaleUser {
		return c
	}
	if c.Magnification == 0 {
		c.Magnification = DefaultMagnification
	}
	c.Magnification = min(max(c.Magnification, MinMagnification), MaxMagnification)
	return c
}

func (c Config) validate() error {
	if c.Mode >= numScaleModes {
		return fmt.Errorf("%w: %d", ErrInvalidMode, c.Mode)
	}
	if c.Mode == ScaleUser && (c.Magnification < MinMagnification || c.Magnification > MaxMagnification) {
		return fmt.Errorf("%w: %d%%", ErrInvalidMagnification, c.Magnification)
	}
	return nil
}

// scale returns the per-axis factors a compiled mode uses.
func (c Config) scale() (sx, sy float32) {
	switch c.Mode {
	case Scale15HW:
		return 1.5, 1.5
	case ScaleUser:
		m := float32(c.Magnification) / 100
		return m, m
	case ScaleFit:
		return float32(screenWidth) / SourceWidth, float32(screenHeight) / SourceHeight
	default:
		return 1, 1
	}
}

// ScaleModes lists every mode in cycling order.
func ScaleModes() []ScaleMode {
	modes := make([]ScaleMode, numScaleModes)
	for i := range modes {
		modes[i] = ScaleMode(i)
	}
	return modes
}
