// Package swapchain alternates the two VRAM frames between scan-out and
// drawing.
package swapchain

import "screenkit/hal"

// DrawTarget receives the frame that rendering should go to.
type DrawTarget interface {
	SetDrawBuffer(s hal.Surface)
}

// SwapChain holds which frame is visible and which one is being drawn.
// Frame 0 starts visible and frame 1 starts as the back buffer.
type SwapChain struct {
	display hal.Display
	target  DrawTarget
	front   int
	back    int
	flips   uint64
}

// New shows frame 0 and points target at frame 1.
func New(display hal.Display, target DrawTarget) *SwapChain {
	s := &SwapChain{display: display, target: target, front: 0, back: 1}
	display.Show(s.front)
	target.SetDrawBuffer(display.Frame(s.back))
	return s
}

// Present makes the back buffer visible and returns the new back buffer.
// With vsync the swap waits for the start of the next vertical blank.
func (s *SwapChain) Present(vsync bool) hal.Surface {
	if vsync {
		s.display.WaitVblankStart()
	}
	s.front, s.back = s.back, s.front
	s.display.Show(s.front)
	back := s.display.Frame(s.back)
	s.target.SetDrawBuffer(back)
	s.flips++
	return back
}

// Back is the frame being drawn.
func (s *SwapChain) Back() hal.Surface { return s.display.Frame(s.back) }

// Front is the frame being scanned out.
func (s *SwapChain) Front() hal.Surface { return s.display.Frame(s.front) }

// BackIndex is the VRAM frame currently being drawn.
func (s *SwapChain) BackIndex() int { return s.back }

// Flips counts completed presents.
func (s *SwapChain) Flips() uint64 { return s.flips }
