package dmalog

// maybeStart issues the next transfer when nothing is in flight and
// bytes are queued. The span handed to the engine never crosses the
// physical end of the buffer: the hardware moves one linear region per
// request, so a wrapped backlog goes out as two sequential transfers.
// Returns the number of bytes requested, zero when nothing started.
func (l *Logger) maybeStart() int {
	l.txMu.Lock()
	defer l.txMu.Unlock()
	return l.startLocked()
}

func (l *Logger) startLocked() int {
	if l.lastLen > 0 || l.engine.Busy() {
		return 0 // in flight; its completion reschedules
	}
	run := l.q.Run()
	if run == 0 {
		return 0
	}
	l.lastLen = run
	if err := l.engine.Start(l.q.Span(run)); err != nil {
		// The scheduler checks busy first, so a refusal here is a
		// logic fault in the engine; leave the bytes queued for the
		// next kick.
		l.lastLen = 0
		return 0
	}
	l.stats.Transfers.Add(1)
	return run
}

// complete runs in the engine's completion context, once per finished
// transfer. It is the only writer of the queue's head index: the head
// may move only after the hardware is done with the span, or the next
// transfer would ship stale bytes.
func (l *Logger) complete() {
	l.txMu.Lock()
	defer l.txMu.Unlock()

	// Completion with nothing pending: spurious, leave all state as is.
	if l.q.Readable() == 0 {
		return
	}
	l.q.Advance(l.lastLen)
	l.lastLen = 0
	// Pick up the remainder (or the second half of a wrapped span).
	l.startLocked()
}
