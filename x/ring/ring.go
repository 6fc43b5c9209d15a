package ring

import (
	"sync/atomic"

	"uartlog-go/x/mathx"
)

// Ring is a fixed-capacity circular byte queue shared between a
// producer side and a consumer side. head and tail hold wrapped
// indices in [0, cap); one slot always stays unused so head == tail
// means empty and never full. The producer side is the only writer of
// tail, the consumer side the only writer of head, so each side needs
// a coherent read of the other index but no shared lock. Atomics keep
// those reads tear-free and ordered.
type Ring struct {
	buf  []byte
	head atomic.Uint32 // consumer index, advanced after transmit
	tail atomic.Uint32 // producer index, advanced after copy-in
}

// New creates a ring of the given size. Usable capacity is size-1.
func New(size int) *Ring {
	if size < 2 {
		panic("ring: size must be >= 2")
	}
	return &Ring{buf: make([]byte, size)}
}

func (r *Ring) Cap() int { return len(r.buf) }

// Readable reports bytes queued and not yet consumed.
func (r *Ring) Readable() int {
	head := r.head.Load()
	tail := r.tail.Load()
	if tail >= head {
		return int(tail - head)
	}
	return len(r.buf) - int(head-tail)
}

// Writable reports bytes the producer may still copy in. The reserved
// slot keeps full distinguishable from empty, so this is cap-1 on an
// empty ring and 0 on a full one.
func (r *Ring) Writable() int {
	return len(r.buf) - r.Readable() - 1
}

// Run reports the longest span readable from head without crossing the
// physical end of the buffer. A wrapped backlog is consumed as two
// runs.
func (r *Ring) Run() int {
	return mathx.Min(r.Readable(), len(r.buf)-int(r.head.Load()))
}

// Push copies p in at tail, splitting into two copies when the record
// straddles the physical end. It is all-or-nothing: when p does not
// fit the ring is left untouched and Push reports false. Concurrent
// producers must serialize among themselves; a concurrent consumer is
// fine.
func (r *Ring) Push(p []byte) bool {
	if len(p) == 0 {
		return true
	}
	if len(p) > r.Writable() {
		return false
	}
	tail := int(r.tail.Load())
	first := mathx.Min(len(p), len(r.buf)-tail)
	copy(r.buf[tail:tail+first], p[:first])
	if second := len(p) - first; second > 0 {
		copy(r.buf[:second], p[first:])
	}
	// Publish only after both copies: the consumer must never see tail
	// ahead of the data.
	r.tail.Store(uint32((tail + len(p)) % len(r.buf)))
	return true
}

// Span returns the contiguous readable view of n bytes starting at
// head. n must not exceed Run(). The slice aliases the ring's storage
// and stays valid until Advance moves head past it.
func (r *Ring) Span(n int) []byte {
	head := int(r.head.Load())
	return r.buf[head : head+n]
}

// Advance moves head past n consumed bytes. Consumer side only; head
// never moves backwards.
func (r *Ring) Advance(n int) {
	head := int(r.head.Load())
	r.head.Store(uint32((head + n) % len(r.buf)))
}

// Indices returns the current head and tail positions.
func (r *Ring) Indices() (head, tail uint32) {
	return r.head.Load(), r.tail.Load()
}
