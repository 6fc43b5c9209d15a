// Package dmalog is a non-blocking text logger that queues formatted
// records into a circular buffer and streams them out through a
// transfer engine (UART TX DMA on hardware) one contiguous span at a
// time. Emit never waits: a record either fits the free queue space
// now or is dropped whole.
//
// The queue's tail index is written only by producers (under the
// configured lock) and its head index only by the completion handler,
// so the two sides share no lock; each just needs a coherent read of
// the other index, which the ring's atomics provide.
package dmalog

import (
	"sync"

	"uartlog-go/errcode"
	"uartlog-go/x/conv"
	"uartlog-go/x/fmtx"
	"uartlog-go/x/ring"
)

// Logger owns the transmit queue, the staging buffer and the in-flight
// transfer marker. One instance per UART.
type Logger struct {
	cfg    Config
	q      *ring.Ring
	engine Engine

	// staging is the producer-side compose buffer, guarded by cfg.Lock
	// and reused across Emit calls.
	staging []byte

	// txMu serializes transfer scheduling against the completion
	// handler. lastLen is the byte count of the transfer currently in
	// flight; it is non-zero exactly between Start and completion.
	txMu    sync.Mutex
	lastLen int

	stats Stats
}

// New validates cfg, wires the completion callback into eng and
// returns a ready logger. The engine must not deliver completions
// before New returns.
func New(cfg Config, eng Engine) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Logger{
		cfg:     cfg,
		q:       ring.New(cfg.BufferSize),
		engine:  eng,
		staging: make([]byte, 0, cfg.MaxRecord),
	}
	eng.Notify(l.complete)
	return l, nil
}

// Emit composes one record and queues it for transmission, then kicks
// the transfer scheduler. It returns the full record length: tick
// prefix, text and the trailing line feed. A record that does not fit
// the free queue space right now is dropped whole - the queue is left
// untouched and errcode.QueueFull comes back. There are no other
// failure modes.
func (l *Logger) Emit(format string, args ...any) (int, error) {
	l.cfg.Lock.Lock()
	rec := l.compose(format, args)
	n := len(rec)
	ok := l.q.Push(rec)
	l.cfg.Lock.Unlock()

	if !ok {
		l.stats.Dropped.Add(1)
		return 0, errcode.QueueFull
	}
	l.stats.Records.Add(1)
	l.stats.Bytes.Add(int64(n))
	l.maybeStart()
	return n, nil
}

// compose builds "(ticks) " + text + "\n" in the staging buffer,
// truncating the text when the record would exceed MaxRecord. The
// result is always a valid, terminated record. Caller holds cfg.Lock.
func (l *Logger) compose(format string, args []any) []byte {
	var tb [10]byte // 2^32-1 needs at most 10 digits
	p := l.staging[:0]
	p = append(p, '(')
	p = append(p, conv.Utoa(tb[:], uint64(l.cfg.Ticks()))...)
	p = append(p, ')', ' ')
	p = fmtx.Appendf(p, format, args...)
	if len(p) > l.cfg.MaxRecord-1 {
		p = p[:l.cfg.MaxRecord-1]
		l.stats.Truncated.Add(1)
	}
	p = append(p, '\n')
	l.staging = p[:0] // keep any growth for the next call
	return p
}
