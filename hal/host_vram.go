package hal

import "sync"

// hostVRAM holds both frames in one contiguous block, frame 1 directly after
// frame 0, the way the device lays out its frame buffers.
type hostVRAM struct {
	mu      sync.Mutex
	mem     []uint16
	frames  [2]Surface
	shown   int
	enabled bool

	vblank chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newHostVRAM() *hostVRAM {
	frameSize := LinePitch * ScreenHeight
	mem := make([]uint16, 2*frameSize)
	v := &hostVRAM{
		mem:    mem,
		vblank: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for i := range v.frames {
		v.frames[i] = Surface{
			Pix:    mem[i*frameSize : (i+1)*frameSize],
			Pitch:  LinePitch,
			Width:  ScreenWidth,
			Height: ScreenHeight,
		}
	}
	return v
}

func (v *hostVRAM) Frame(i int) Surface { return v.frames[i&1] }

func (v *hostVRAM) Show(i int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shown = i & 1
}

func (v *hostVRAM) SetEnabled(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enabled = on
}

// WaitVblankStart returns immediately once the VRAM has been closed.
func (v *hostVRAM) WaitVblankStart() {
	select {
	case <-v.vblank:
	case <-v.done:
	}
}

// signalVblank is called by whoever scans the frame out. A missed waiter
// leaves at most one pending blank behind.
func (v *hostVRAM) signalVblank() {
	select {
	case v.vblank <- struct{}{}:
	default:
	}
}

func (v *hostVRAM) close() {
	v.once.Do(func() { close(v.done) })
}

// snapshot copies the visible region of the shown frame into dst (ScreenWidth
// pixels per row) and reports whether scan-out is enabled.
func (v *hostVRAM) snapshot(dst []uint16) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	f := v.frames[v.shown]
	for y := 0; y < f.Height; y++ {
		copy(dst[y*f.Width:(y+1)*f.Width], f.Row(y))
	}
	return v.enabled
}
