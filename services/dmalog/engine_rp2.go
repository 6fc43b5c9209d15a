//go:build rp2040

package dmalog

import (
	"machine"
	"sync/atomic"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"uartlog-go/errcode"
)

// UARTParams configures the transmit port for a UARTEngine.
type UARTParams struct {
	Baud uint32 // default driver value if zero
	TX   machine.Pin
	RX   machine.Pin
	// Activity is toggled once per completed transfer, the classic
	// blink-on-traffic debug aid. machine.NoPin disables it.
	Activity machine.Pin
}

// UARTEngine feeds one contiguous span at a time into the uartx TX
// path on a worker goroutine and signals completion once the span has
// been handed off. The worker plays the part of the DMA channel plus
// its completion interrupt.
type UARTEngine struct {
	u    *uartx.UART
	reqs chan []byte
	busy atomic.Bool
	done func()
	act  machine.Pin
}

// NewUARTEngine configures u and starts the worker.
func NewUARTEngine(u *uartx.UART, p UARTParams) (*UARTEngine, error) {
	if u == nil {
		return nil, errcode.InvalidParams
	}
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: p.Baud,
		TX:       p.TX,
		RX:       p.RX,
	}); err != nil {
		return nil, err
	}
	if p.Activity != machine.NoPin {
		p.Activity.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	e := &UARTEngine{u: u, reqs: make(chan []byte, 1), act: p.Activity}
	go e.pump()
	return e, nil
}

func (e *UARTEngine) Notify(done func()) { e.done = done }

func (e *UARTEngine) Busy() bool { return e.busy.Load() }

func (e *UARTEngine) Start(p []byte) error {
	if !e.busy.CompareAndSwap(false, true) {
		return errcode.Busy
	}
	e.reqs <- p
	return nil
}

func (e *UARTEngine) pump() {
	for p := range e.reqs {
		for len(p) > 0 {
			n, err := e.u.Write(p)
			if err != nil || n <= 0 {
				break // drop the rest; the logger never blocks on us
			}
			p = p[n:]
		}
		if e.act != machine.NoPin {
			e.act.Set(!e.act.Get())
		}
		e.busy.Store(false)
		if e.done != nil {
			e.done()
		}
	}
}
