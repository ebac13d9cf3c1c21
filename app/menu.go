package app

import (
	"fmt"

	"screenkit/gu"
	"screenkit/hal"
	"screenkit/internal/buildinfo"
	"screenkit/video"
)

// 5551 colours used by the menu.
const (
	colorWhite  = 0xffff
	colorGrey   = 0xc210
	colorYellow = 0x83ff
	colorBlack  = 0x8000
)

// Menu layout.
const (
	menuLeft    = 8
	menuTop     = 8
	menuRight   = hal.ScreenWidth - 9
	menuBottom  = hal.ScreenHeight - 9
	titleRule   = 30
	listTop     = 40
	columnRule  = 230
	consoleRule = consoleY - 8
	magStep     = 10

	// dim darkens the captured frame behind the menu.
	dim = 0xb0000000
)

// menu is the pause screen: Up and Down pick a scale mode, Cross applies it,
// Square toggles filtering and L and R change the user magnification.
type menu struct {
	cursor int
}

func (m *menu) handle(s *system, pressed hal.Buttons) {
	modes := video.ScaleModes()
	cfg := s.video.Config()
	switch {
	case pressed&hal.ButtonUp != 0:
		m.cursor = (m.cursor + len(modes) - 1) % len(modes)
	case pressed&hal.ButtonDown != 0:
		m.cursor = (m.cursor + 1) % len(modes)
	case pressed&hal.ButtonCross != 0:
		s.setMode(modes[m.cursor], cfg.Magnification)
	case pressed&hal.ButtonSquare != 0:
		f := gu.Linear
		if cfg.Filter == gu.Linear {
			f = gu.Nearest
		}
		s.video.SetFilter(f)
		s.logf("app: filter %s", f)
	case pressed&hal.ButtonL != 0:
		s.setMode(cfg.Mode, max(cfg.Magnification-magStep, video.MinMagnification))
	case pressed&hal.ButtonR != 0:
		s.setMode(cfg.Mode, min(cfg.Magnification+magStep, video.MaxMagnification))
	}
}

func (s *system) drawMenu() {
	v := s.video
	v.ClearScreen(0)
	if s.capture != nil {
		v.BlitToScreen(s.capture, video.SourceWidth, video.SourceHeight,
			(hal.ScreenWidth-video.SourceWidth)/2, (hal.ScreenHeight-video.SourceHeight)/2)
	}
	v.DrawAlphaBox(0, 0, hal.ScreenWidth-1, hal.ScreenHeight-1, dim)
	v.DrawOutlineBox(menuLeft, menuTop, menuRight, menuBottom, colorWhite)
	v.PrintString("screenkit "+buildinfo.Short(), -1, menuTop+8, colorWhite, -1)
	v.DrawHLine(menuLeft, menuRight, titleRule, colorWhite)

	cfg := v.Config()
	lh := v.LineHeight() + 4
	for i, mode := range video.ScaleModes() {
		y := listTop + i*lh
		label := mode.String()
		if mode == video.ScaleUser {
			label = fmt.Sprintf("%s %d%%", label, cfg.Magnification)
		}
		fg := uint16(colorGrey)
		if mode == cfg.Mode {
			fg = colorWhite
		}
		v.PrintString(label, 40, y, fg, -1)
		if i == s.menu.cursor {
			v.DrawLine(24, y+1, 31, y+4, colorYellow)
			v.DrawLine(31, y+5, 24, y+8, colorYellow)
		}
	}

	v.DrawVLine(columnRule, titleRule, consoleRule, colorWhite)
	st := v.Stats()
	v.PrintString(fmt.Sprintf("filter  %s", cfg.Filter), columnRule+12, listTop, colorWhite, -1)
	v.PrintString(fmt.Sprintf("frames  %d", st.Frames), columnRule+12, listTop+lh, colorWhite, -1)
	v.PrintString(fmt.Sprintf("dropped %d", st.DroppedDraws), columnRule+12, listTop+2*lh, colorWhite, -1)

	v.DrawHLine(menuLeft, menuRight, consoleRule, colorWhite)
	v.DrawFilledBox(consoleX-2, consoleY-2, consoleX+consoleWidth+1, consoleY+consoleHeight+1, colorBlack)
	s.console.DrawTo(v.Back(), consoleX, consoleY)
}
