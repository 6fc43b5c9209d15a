package heartbeat

import (
	"context"
	"time"
)

// Printer is the logging surface the service emits through.
// *dmalog.Logger satisfies it.
type Printer interface {
	Emit(format string, args ...any) (int, error)
}

// Service emits a periodic liveness line. A line that the logger drops
// under pressure is simply gone; the next tick sends another.
type Service struct {
	Interval time.Duration // defaults to 1s
	Out      Printer
}

func (s *Service) serviceLoop(ctx context.Context) {
	iv := s.Interval
	if iv <= 0 {
		iv = time.Second
	}
	tick := time.NewTicker(iv)
	defer tick.Stop()

	n := 0
	for {
		select {
		case <-ctx.Done():
			println("Info: heartbeat service stopping")
			return
		case <-tick.C:
			n++
			_, _ = s.Out.Emit("heartbeat %d", n)
		}
	}
}

// Start the heartbeat service.
func (s *Service) Start(ctx context.Context) error {
	go s.serviceLoop(ctx)
	return nil
}
