package timex

import "time"

var start = time.Now()

// TickMs returns a free-running millisecond counter since process
// start. It wraps silently at 2^32 (~49.7 days); consumers treat the
// value as opaque and never compare across a wrap.
func TickMs() uint32 { return uint32(time.Since(start).Milliseconds()) }

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }
