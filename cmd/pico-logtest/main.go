//go:build rp2040

package main

import (
	"time"

	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"uartlog-go/services/dmalog"
)

func main() {
	println("[logtest] boot …")
	time.Sleep(1500 * time.Millisecond)

	eng, err := dmalog.NewUARTEngine(uartx.UART0, dmalog.UARTParams{
		Baud:     115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
		Activity: machine.LED,
	})
	if err != nil {
		println("[logtest] FAIL: engine:", err.Error())
		return
	}

	lg, err := dmalog.New(dmalog.Config{}, eng)
	if err != nil {
		println("[logtest] FAIL: logger:", err.Error())
		return
	}

	// Burst phase: overrun the queue on purpose and count the drops.
	dropped := 0
	for i := 0; i < 500; i++ {
		if _, err := lg.Emit("burst %d abcdefghijklmnopqrstuvwxyz", i); err != nil {
			dropped++
		}
	}
	println("[logtest] burst done, dropped:", dropped)

	// Steady phase: one line per 250ms forever.
	for i := 0; ; i++ {
		_, _ = lg.Emit("tick %d", i)
		time.Sleep(250 * time.Millisecond)
	}
}
