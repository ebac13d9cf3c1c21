package hal

import (
	"fmt"
	"os"
	"sync"
)

// DefaultFirmware is reported by the host HAL unless HostConfig overrides it.
const DefaultFirmware = 0x06610010

// HostConfig configures the host HAL.
type HostConfig struct {
	// Firmware is the version reported by HAL.Firmware. Zero selects DefaultFirmware.
	Firmware uint32
	// Volume is the initial system volume (0..30).
	Volume int
}

type hostHAL struct {
	logger   *hostLogger
	vram     *hostVRAM
	pad      *hostPad
	volume   *hostVolume
	clock    *hostClock
	firmware uint32
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	if cfg.Firmware == 0 {
		cfg.Firmware = DefaultFirmware
	}
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger:   logger,
		vram:     newHostVRAM(),
		pad:      newHostPad(),
		volume:   newHostVolume(cfg.Volume),
		clock:    newHostClock(),
		firmware: cfg.Firmware,
	}
}

func (h *hostHAL) Logger() Logger        { return h.logger }
func (h *hostHAL) Display() Display      { return h.vram }
func (h *hostHAL) Input() Input          { return h.pad }
func (h *hostHAL) Volume() VolumeControl { return h.volume }
func (h *hostHAL) Clock() Clock          { return h.clock }
func (h *hostHAL) Firmware() uint32      { return h.firmware }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
