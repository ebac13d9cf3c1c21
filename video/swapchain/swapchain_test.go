package swapchain

import (
	"testing"

	"screenkit/hal"
)

type fakeDisplay struct {
	frames [2]hal.Surface
	shown  int
	waits  int
	log    []string
}

func newFakeDisplay() *fakeDisplay {
	d := &fakeDisplay{}
	for i := range d.frames {
		d.frames[i] = hal.NewSurface(4, 4, 4)
	}
	return d
}

func (d *fakeDisplay) Frame(i int) hal.Surface { return d.frames[i&1] }
func (d *fakeDisplay) Show(i int) {
	d.shown = i
	d.log = append(d.log, "show")
}
func (d *fakeDisplay) WaitVblankStart() {
	d.waits++
	d.log = append(d.log, "wait")
}
func (d *fakeDisplay) SetEnabled(bool) {}

type fakeTarget struct{ draw hal.Surface }

func (t *fakeTarget) SetDrawBuffer(s hal.Surface) { t.draw = s }

func same(a, b hal.Surface) bool { return &a.Pix[0] == &b.Pix[0] }

func TestSwapChainAlternates(t *testing.T) {
	d := newFakeDisplay()
	tgt := &fakeTarget{}
	s := New(d, tgt)
	if d.shown != 0 || !same(tgt.draw, d.frames[1]) {
		t.Fatal("initial roles wrong")
	}

	back := s.Present(false)
	if d.shown != 1 || !same(back, d.frames[0]) || !same(tgt.draw, d.frames[0]) {
		t.Fatal("first present did not swap")
	}
	if !same(s.Front(), d.frames[1]) || s.BackIndex() != 0 {
		t.Fatal("accessors disagree with display")
	}

	back = s.Present(false)
	if d.shown != 0 || !same(back, d.frames[1]) {
		t.Fatal("second present did not swap back")
	}
	if d.waits != 0 {
		t.Fatalf("waited %d times without vsync", d.waits)
	}
	if s.Flips() != 2 {
		t.Fatalf("flips = %d", s.Flips())
	}
}

func TestSwapChainWaitsBeforeSwapping(t *testing.T) {
	d := newFakeDisplay()
	s := New(d, &fakeTarget{})
	d.log = nil
	s.Present(true)
	if len(d.log) != 2 || d.log[0] != "wait" || d.log[1] != "show" {
		t.Fatalf("present order = %v", d.log)
	}
}
