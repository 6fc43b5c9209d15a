package dmalog

// Engine is the transfer-side boundary: something that moves one
// contiguous byte region to the wire asynchronously and signals
// completion out of band. On hardware this is the UART TX DMA pair; on
// hosted builds a goroutine stands in for it.
type Engine interface {
	// Busy reports whether a transfer is still in flight.
	Busy() bool

	// Start begins transmitting p and returns without waiting. p
	// aliases the logger's queue storage and stays valid until the
	// completion callback for this transfer has been delivered.
	// Returns errcode.Busy when a transfer is already running.
	Start(p []byte) error

	// Notify registers the completion callback. The engine invokes it
	// exactly once per finished transfer, from its own completion
	// context, never from inside Start.
	Notify(done func())
}
