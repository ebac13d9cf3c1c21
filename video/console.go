package video

import (
	"sync"

	"screenkit/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

// Console is a scrolling text terminal rendered into an off-screen surface.
// It doubles as a hal.Logger so log lines can be shown on the menu screen.
type Console struct {
	mu   sync.Mutex
	surf hal.Surface
	term *tinyterm.Terminal
	next hal.Logger
}

// NewConsole allocates a width x height console drawn with font. Lines
// written through the Logger methods are also forwarded to next when it is
// non-nil.
func NewConsole(width, height int, font tinyfont.Fonter, next hal.Logger) *Console {
	c := &Console{
		surf: hal.NewSurface(width, height, width),
		next: next,
	}
	c.term = tinyterm.NewTerminal(&surfaceDisplay{s: c.surf})
	c.term.Configure(&tinyterm.Config{
		Font:              font,
		FontHeight:        DefaultFontHeight,
		FontOffset:        DefaultFontOffset,
		UseSoftwareScroll: true,
	})
	return c
}

// Write feeds raw bytes, including VT100 escapes, to the terminal.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.term.Write(p)
}

func (c *Console) WriteLineString(s string) {
	c.mu.Lock()
	c.term.Write([]byte("\n" + s))
	c.mu.Unlock()
	if c.next != nil {
		c.next.WriteLineString(s)
	}
}

func (c *Console) WriteLineBytes(b []byte) {
	c.WriteLineString(string(b))
}

// Surface is the console's pixel buffer; its pitch equals its width.
func (c *Console) Surface() hal.Surface { return c.surf }

// DrawTo copies the console into dst at (x,y).
func (c *Console) DrawTo(dst hal.Surface, x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	Blit(dst, c.surf, x, y)
}
