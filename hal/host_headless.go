package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStop ends a host run without reporting a failure.
var ErrStop = errors.New("stop")

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Host  HostConfig
	Scale int
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Host    HostConfig
	// Hz is the synthetic vertical blank rate.
	Hz int
	// Frames stops the run after N steps (0 = run until cancelled).
	Frames uint64
	// Buttons is held on the pad for the whole run.
	Buttons Buttons
}

// RunHeadless runs the app without opening a window. A ticker stands in for
// the display's vertical blank.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Host)
	h.pad.set(cfg.Buttons)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer h.vram.close()
	go func() {
		t := time.NewTicker(d)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				h.vram.close()
				return
			case <-t.C:
				h.vram.signalVblank()
			}
		}
	}()

	var frame uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
		frame++
		if cfg.Frames > 0 && frame >= cfg.Frames {
			return nil
		}
	}
}
