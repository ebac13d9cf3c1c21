package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Physical display geometry.
const (
	ScreenWidth  = 480
	ScreenHeight = 272
	LinePitch    = 512
)

// PixelFormat defines a 16 or 32 bit pixel encoding.
type PixelFormat uint8

const (
	// PixelFormat5551 is 16bpp: abbbbbgggggrrrrr.
	PixelFormat5551 PixelFormat = iota + 1
	// PixelFormat4444 is 16bpp: aaaabbbbggggrrrr.
	PixelFormat4444
	// PixelFormat8888 is 32bpp: aaaaaaaabbbbbbbbggggggggrrrrrrrr.
	PixelFormat8888
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormat5551:
		return "5551"
	case PixelFormat4444:
		return "4444"
	case PixelFormat8888:
		return "8888"
	default:
		return "unknown"
	}
}

// Display owns the two VRAM frames and the scan-out.
type Display interface {
	// Frame returns VRAM frame 0 or 1.
	Frame(i int) Surface
	// Show selects the frame that is scanned out.
	Show(i int)
	// WaitVblankStart blocks until the next vertical blank begins.
	WaitVblankStart()
	SetEnabled(on bool)
}

// Buttons is a bitmask of currently held buttons.
type Buttons uint32

const (
	ButtonUp Buttons = 1 << iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonCross
	ButtonCircle
	ButtonSquare
	ButtonTriangle
	ButtonL
	ButtonR
	ButtonStart
	ButtonSelect
	ButtonHome
	ButtonVolUp
	ButtonVolDown
	ButtonNote
)

// Input provides a snapshot of the pad.
type Input interface {
	Buttons() Buttons
}

// VolumeControl reports the system volume level.
//
// Level returns 0..30, or -1 while another owner holds the volume display.
type VolumeControl interface {
	Level() int
}

// Clock is a monotonic microsecond counter.
type Clock interface {
	Micros() uint64
}

// HAL provides the only contact point between the compositor and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Volume() VolumeControl
	Clock() Clock
	// Firmware returns the packed system software version (0xMMmmpp10 style).
	Firmware() uint32
}
