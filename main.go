package main

import (
	"context"
	"os"
	"time"

	"uartlog-go/services/dmalog"
	"uartlog-go/services/heartbeat"
	"uartlog-go/x/hexdump"
)

func main() {
	// Host demo: the writer engine stands in for the UART DMA pair and
	// drains to stdout.
	eng := dmalog.NewWriterEngine(os.Stdout)
	defer eng.Close()

	lg, err := dmalog.New(dmalog.Config{}, eng)
	if err != nil {
		println("fatal:", err.Error())
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hb := &heartbeat.Service{Interval: 1 * time.Second, Out: lg}
	_ = hb.Start(ctx)

	_, _ = lg.Emit("boot")
	time.Sleep(5 * time.Second)

	s := lg.Stats()
	_, _ = lg.Emit("records=%d bytes=%d dropped=%d transfers=%d",
		s.Records, s.Bytes, s.Dropped, s.Transfers)
	time.Sleep(100 * time.Millisecond)

	// Diagnostic dump of a sample frame, the way a failed packet would
	// be inspected in the field.
	_ = hexdump.Dump(os.Stdout, []byte{0x02, 0x03, 0x1F, 0x00, 0x0D, 'H', 'i', '!'})
}
