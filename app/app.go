// Package app wires the compositor, overlay and a test-card frame source into
// a per-frame step that the host runners drive.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"screenkit/gu"
	"screenkit/hal"
	"screenkit/internal/buildinfo"
	"screenkit/video"
	"screenkit/video/icons"
	"screenkit/video/overlay"
)

// Config is the application configuration.
type Config struct {
	Video video.Config
	// VSync waits for the vertical blank before each flip.
	VSync bool
	// IconsDir holds tool-generated overlay icons. Empty uses the built-in set.
	IconsDir string
	// ShotDir receives screenshots taken with Home. Empty disables them.
	ShotDir    string
	ShotFormat video.ImageFormat
}

// DefaultConfig is the hardware 1.5x stretch with vsync.
func DefaultConfig() Config {
	return Config{Video: video.DefaultConfig(), VSync: true}
}

type view uint8

const (
	viewGame view = iota
	viewMenu
)

// Console placement on the menu screen.
const (
	consoleX      = 16
	consoleY      = 184
	consoleWidth  = 448
	consoleHeight = 72
)

type system struct {
	h       hal.HAL
	cfg     Config
	log     hal.Logger
	dev     *gu.SoftDevice
	video   *video.Compositor
	hook    overlay.Hook
	console *video.Console
	render  func(dst hal.Surface, frame uint64)

	started bool
	view    view
	menu    menu
	capture []uint16
	prev    hal.Buttons
	frame   uint64
	shots   int
}

// New builds the app with DefaultConfig.
func New(h hal.HAL) (func() error, error) {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig builds the app and returns its per-frame step. The device is
// initialised on the first step so that runners can start their vertical
// blank source first.
func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	return s.step, nil
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	dev := gu.NewSoftDevice()
	c, err := video.New(h, dev, cfg.Video)
	if err != nil {
		return nil, err
	}
	s := &system{
		h:       h,
		cfg:     cfg,
		dev:     dev,
		video:   c,
		console: video.NewConsole(consoleWidth, consoleHeight, video.DefaultFont(), h.Logger()),
		render:  renderTestCard,
	}
	s.log = s.console
	s.menu.cursor = int(cfg.Video.Mode)

	set := icons.Default()
	if cfg.IconsDir != "" {
		if set, err = icons.LoadDir(cfg.IconsDir); err != nil {
			return nil, fmt.Errorf("app: load icons: %w", err)
		}
	}
	supported := overlay.Supported(h.Firmware())
	if supported {
		if err := overlay.Load(c.Atlas(), set); err != nil {
			return nil, err
		}
	}
	s.hook = overlay.New(supported, dev, h.Clock(), h.Input(), h.Volume())
	s.logf("app: screenkit %s, firmware %08x, overlay %v", buildinfo.String(), h.Firmware(), supported)
	return s, nil
}

func (s *system) logf(format string, args ...any) {
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (s *system) start() {
	s.video.Init()
	s.video.ResolutionSmall()
	s.started = true
}

// step renders one frame. Start opens and closes the menu, Select cycles the
// scale mode, Home saves a screenshot and Start+Select quits.
func (s *system) step() (err error) {
	defer s.recoverPanic(&err)

	if !s.started {
		s.start()
	}

	held := s.h.Input().Buttons()
	pressed := held &^ s.prev
	s.prev = held

	if held&(hal.ButtonStart|hal.ButtonSelect) == hal.ButtonStart|hal.ButtonSelect {
		s.logf("app: quit")
		s.video.Close()
		return hal.ErrStop
	}
	if pressed&hal.ButtonHome != 0 {
		if err := s.screenshot(); err != nil {
			s.logf("app: screenshot: %v", err)
		}
	}
	switch {
	case pressed&hal.ButtonStart != 0:
		s.toggleMenu()
	case pressed&hal.ButtonSelect != 0 && s.view == viewGame:
		s.setMode(s.video.Config().Mode.Next(), s.video.Config().Magnification)
	}

	if s.view == viewMenu {
		s.menu.handle(s, pressed)
		s.drawMenu()
		s.hook.Tick(false)
	} else {
		s.render(s.video.Texture(), s.frame)
		s.video.PresentFrame()
		s.hook.Tick(true)
	}
	s.video.Flip(s.cfg.VSync)
	s.frame++
	return nil
}

func (s *system) toggleMenu() {
	if s.view == viewGame {
		s.capture = s.video.CopyScreen()
		s.video.ResolutionLarge()
		s.view = viewMenu
		return
	}
	s.capture = nil
	s.video.ResolutionSmall()
	s.view = viewGame
}

func (s *system) setMode(mode video.ScaleMode, magnification int) {
	if err := s.video.SetScaleMode(mode, magnification); err != nil {
		s.logf("app: %v", err)
		return
	}
	s.menu.cursor = int(mode)
	s.logf("app: scale mode %s", mode)
}

func (s *system) screenshot() error {
	if s.cfg.ShotDir == "" {
		return errors.New("no screenshot directory configured")
	}
	s.shots++
	path := filepath.Join(s.cfg.ShotDir, fmt.Sprintf("shot%04d%s", s.shots, s.cfg.ShotFormat.Ext()))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.video.Screenshot(f, s.cfg.ShotFormat); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.logf("app: saved %s", path)
	return nil
}
