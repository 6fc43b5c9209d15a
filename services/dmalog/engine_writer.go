package dmalog

import (
	"io"
	"sync/atomic"

	"tinygo.org/x/drivers"

	"uartlog-go/errcode"
)

// WriterEngine drains each transfer to an io.Writer on a worker
// goroutine and then signals completion, standing in for the UART DMA
// pair wherever there is no real one: hosted builds, tests, or a
// console mirror. The asynchronous hand-off preserves the contract
// that completion never arrives from inside Start.
type WriterEngine struct {
	w    io.Writer
	reqs chan []byte
	busy atomic.Bool
	done func()
}

// NewWriterEngine starts the worker immediately.
func NewWriterEngine(w io.Writer) *WriterEngine {
	e := &WriterEngine{w: w, reqs: make(chan []byte, 1)}
	go e.pump()
	return e
}

// NewPortEngine drains transfers into a drivers.UART-compatible port.
// machine.UART satisfies the interface on MCU builds, so this covers
// targets where the dedicated TX path is not available.
func NewPortEngine(u drivers.UART) *WriterEngine { return NewWriterEngine(u) }

func (e *WriterEngine) Notify(done func()) { e.done = done }

func (e *WriterEngine) Busy() bool { return e.busy.Load() }

func (e *WriterEngine) Start(p []byte) error {
	if !e.busy.CompareAndSwap(false, true) {
		return errcode.Busy
	}
	e.reqs <- p
	return nil
}

// Close stops the worker once queued transfers have drained. The
// engine must not be started afterwards.
func (e *WriterEngine) Close() { close(e.reqs) }

func (e *WriterEngine) pump() {
	for p := range e.reqs {
		// Best effort: a serial console has no recovery path, and the
		// logger's contract is delivery or silence, never blocking.
		_, _ = e.w.Write(p)
		e.busy.Store(false)
		if e.done != nil {
			e.done()
		}
	}
}
