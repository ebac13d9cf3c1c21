package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"screenkit/app"
	"screenkit/gu"
	"screenkit/hal"
	"screenkit/video"
)

func main() {
	var cfg hal.HeadlessConfig
	var scale, filter, shotFormat string
	var firmware uint
	var windowScale int
	appCfg := app.DefaultConfig()

	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Vertical blank rate in headless mode.")
	flag.Uint64Var(&cfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&scale, "scale", appCfg.Video.Mode.String(), "Scale mode: none, 1.5hw, 1.5sw, user or fit.")
	flag.IntVar(&appCfg.Video.Magnification, "mag", appCfg.Video.Magnification, "Magnification in percent for -scale=user.")
	flag.StringVar(&filter, "filter", appCfg.Video.Filter.String(), "Texture filter: nearest or linear.")
	flag.BoolVar(&appCfg.VSync, "vsync", appCfg.VSync, "Wait for the vertical blank before each flip.")
	flag.UintVar(&firmware, "firmware", hal.DefaultFirmware, "Reported system software version.")
	flag.IntVar(&cfg.Host.Volume, "volume", 15, "Initial system volume (0..30).")
	flag.StringVar(&appCfg.IconsDir, "icons", "", "Directory of .nib overlay icons (default: built-in).")
	flag.StringVar(&appCfg.ShotDir, "shot", "", "Directory for screenshots taken with Home.")
	flag.StringVar(&shotFormat, "shot-format", "png", "Screenshot format: png or bmp.")
	flag.IntVar(&windowScale, "window-scale", 2, "Window size multiplier.")
	flag.Parse()

	var err error
	if appCfg.Video.Mode, err = video.ParseScaleMode(scale); err != nil {
		fatal(err)
	}
	if appCfg.Video.Filter, err = gu.ParseFilter(filter); err != nil {
		fatal(err)
	}
	if appCfg.ShotFormat, err = video.FormatFromPath("shot." + shotFormat); err != nil {
		fatal(err)
	}
	cfg.Host.Firmware = uint32(firmware)

	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(hal.WindowConfig{Host: cfg.Host, Scale: windowScale}, newApp); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
