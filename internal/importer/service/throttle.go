package service

import (
	"context"
	"time"
)

// Throttler paces the orchestrator between batches. Kept as a strategy so
// the fixed delay can be swapped for a token bucket without touching the
// run loop.
type Throttler interface {
	Pause(ctx context.Context) error
}

// FixedDelay sleeps a constant interval; the default policy. The sleep is
// cut short when the context is cancelled.
type FixedDelay struct {
	Delay time.Duration
}

func (f FixedDelay) Pause(ctx context.Context) error {
	if f.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(f.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoDelay is used by tests and dry runs.
type NoDelay struct{}

func (NoDelay) Pause(context.Context) error { return nil }
