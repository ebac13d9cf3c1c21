package hal

import "sync/atomic"

const maxVolume = 30

type hostPad struct {
	buttons atomic.Uint32
}

func newHostPad() *hostPad { return &hostPad{} }

func (p *hostPad) Buttons() Buttons { return Buttons(p.buttons.Load()) }

func (p *hostPad) set(b Buttons) { p.buttons.Store(uint32(b)) }

type hostVolume struct {
	level atomic.Int32
}

func newHostVolume(level int) *hostVolume {
	v := &hostVolume{}
	v.level.Store(int32(clampInt(level, 0, maxVolume)))
	return v
}

func (v *hostVolume) Level() int { return int(v.level.Load()) }

func (v *hostVolume) step(delta int) {
	for {
		cur := v.level.Load()
		next := int32(clampInt(int(cur)+delta, 0, maxVolume))
		if v.level.CompareAndSwap(cur, next) {
			return
		}
	}
}
