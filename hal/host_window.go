//go:build cgo

package hal

import (
	"errors"
	"screenkit/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow starts a desktop window that shows the visible frame and forwards
// the keyboard as pad buttons. The app step runs on its own goroutine and
// paces itself on the vertical blank, which the window signals after each draw.
// It blocks until the window closes or the app stops.
func RunWindow(cfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	h := newHostHAL(cfg.Host)
	step, err := newApp(h)
	if err != nil {
		return err
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 2
	}

	g := &hostGame{
		h:       h,
		errc:    make(chan error, 1),
		stop:    make(chan struct{}),
		scratch: make([]uint16, ScreenWidth*ScreenHeight),
		rgba:    make([]byte, ScreenWidth*ScreenHeight*4),
	}
	go g.runApp(step)
	defer func() {
		close(g.stop)
		h.vram.close()
	}()

	ebiten.SetWindowTitle("screenkit (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(ScreenWidth*scale, ScreenHeight*scale)
	ebiten.SetTPS(60)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(g)
}

var windowKeys = []struct {
	key    ebiten.Key
	button Buttons
}{
	{ebiten.KeyArrowUp, ButtonUp},
	{ebiten.KeyArrowDown, ButtonDown},
	{ebiten.KeyArrowLeft, ButtonLeft},
	{ebiten.KeyArrowRight, ButtonRight},
	{ebiten.KeyX, ButtonCross},
	{ebiten.KeyZ, ButtonCircle},
	{ebiten.KeyA, ButtonSquare},
	{ebiten.KeyS, ButtonTriangle},
	{ebiten.KeyQ, ButtonL},
	{ebiten.KeyW, ButtonR},
	{ebiten.KeyEnter, ButtonStart},
	{ebiten.KeyTab, ButtonSelect},
	{ebiten.KeyF12, ButtonHome},
	{ebiten.KeyEqual, ButtonVolUp},
	{ebiten.KeyMinus, ButtonVolDown},
	{ebiten.KeyM, ButtonNote},
}

type hostGame struct {
	h       *hostHAL
	errc    chan error
	stop    chan struct{}
	img     *ebiten.Image
	scratch []uint16
	rgba    []byte
}

func (g *hostGame) runApp(step func() error) {
	for {
		select {
		case <-g.stop:
			return
		default:
		}
		if err := step(); err != nil {
			g.errc <- err
			return
		}
	}
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.errc:
		if errors.Is(err, ErrStop) {
			return ebiten.Termination
		}
		return err
	default:
	}

	var b Buttons
	for _, k := range windowKeys {
		if ebiten.IsKeyPressed(k.key) {
			b |= k.button
		}
	}
	g.h.pad.set(b)

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.h.volume.step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.h.volume.step(-1)
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(ScreenWidth, ScreenHeight)
	}

	if g.h.vram.snapshot(g.scratch) {
		for i, p := range g.scratch {
			c := RGBAFrom5551(p)
			j := i * 4
			g.rgba[j+0] = c.R
			g.rgba[j+1] = c.G
			g.rgba[j+2] = c.B
			g.rgba[j+3] = 0xff
		}
		g.img.WritePixels(g.rgba)
		screen.DrawImage(g.img, nil)
	}
	g.h.vram.signalVblank()
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
