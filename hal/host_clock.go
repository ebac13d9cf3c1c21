package hal

import "time"

type hostClock struct {
	start time.Time
	now   func() time.Time
}

func newHostClock() *hostClock {
	return newHostClockWithNow(time.Now)
}

func newHostClockWithNow(now func() time.Time) *hostClock {
	return &hostClock{start: now(), now: now}
}

func (c *hostClock) Micros() uint64 {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Microsecond)
}
