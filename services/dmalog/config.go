package dmalog

import (
	"sync"

	"uartlog-go/errcode"
	"uartlog-go/x/mathx"
	"uartlog-go/x/timex"
)

// Defaults match the sizing the logger shipped with on its first
// target: a 4 KiB transmit queue and 128-byte records.
const (
	DefaultBufferSize = 4096
	DefaultMaxRecord  = 128

	minMaxRecord = 32
	maxMaxRecord = 1024
)

// Config centralises sizes and injected capabilities.
type Config struct {
	// BufferSize is the circular queue capacity in bytes. One byte is
	// reserved to tell full from empty, so at most BufferSize-1 bytes
	// are ever queued.
	BufferSize int

	// MaxRecord bounds one composed record: tick prefix, text and the
	// trailing line feed. Longer text is truncated to fit.
	MaxRecord int

	// Ticks supplies the free-running millisecond counter stamped on
	// each record. Wraps silently at 2^32. Defaults to timex.TickMs.
	Ticks func() uint32

	// Lock serializes producers against each other. Defaults to a
	// private mutex; a single-goroutine producer may inject a no-op
	// locker.
	Lock sync.Locker
}

// Validate applies defaults and clamps in place.
func (c *Config) Validate() error {
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.BufferSize < 2 {
		return errcode.InvalidParams
	}
	if c.MaxRecord == 0 {
		c.MaxRecord = DefaultMaxRecord
	}
	c.MaxRecord = mathx.Clamp(c.MaxRecord, minMaxRecord, maxMaxRecord)
	// A record must be able to fit the queue outright.
	c.MaxRecord = mathx.Min(c.MaxRecord, c.BufferSize-1)
	if c.Ticks == nil {
		c.Ticks = timex.TickMs
	}
	if c.Lock == nil {
		c.Lock = &sync.Mutex{}
	}
	return nil
}
