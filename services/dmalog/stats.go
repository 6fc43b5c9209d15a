package dmalog

import "sync/atomic"

// Stats counts logger outcomes. Fields are updated atomically and safe
// to read while the logger runs.
type Stats struct {
	Records   atomic.Int64 // records accepted into the queue
	Bytes     atomic.Int64 // accepted bytes, prefixes and line feeds included
	Dropped   atomic.Int64 // records rejected for lack of queue space
	Truncated atomic.Int64 // records cut to the staging bound
	Transfers atomic.Int64 // transfer requests issued to the engine
}

// Snapshot is a plain-value copy of Stats.
type Snapshot struct {
	Records   int64
	Bytes     int64
	Dropped   int64
	Truncated int64
	Transfers int64
}

// Stats returns a point-in-time copy of the counters.
func (l *Logger) Stats() Snapshot {
	return Snapshot{
		Records:   l.stats.Records.Load(),
		Bytes:     l.stats.Bytes.Load(),
		Dropped:   l.stats.Dropped.Load(),
		Truncated: l.stats.Truncated.Load(),
		Transfers: l.stats.Transfers.Load(),
	}
}
