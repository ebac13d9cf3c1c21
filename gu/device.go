package gu

import "screenkit/hal"

// Device executes command lists into the current draw buffer.
type Device interface {
	// Execute submits l. Rendering may still be in flight until Sync.
	Execute(l *List)
	// Sync waits until every submitted list has finished.
	Sync()
	// WritebackCache makes CPU writes to texture memory visible to the device.
	WritebackCache()
	SetDrawBuffer(s hal.Surface)
	SetDisplay(on bool)
}

// Stats counts device activity.
type Stats struct {
	Lists      uint64
	Draws      uint64
	Syncs      uint64
	Writebacks uint64
}
