// Package clock provides context-aware waiting on top of an lnd clock.
package clock

import (
	"context"
	"time"

	"github.com/lightningnetwork/lnd/clock"
)

// Sleep waits for d on clk or returns early with the context error.
func Sleep(ctx context.Context, clk clock.Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clk.TickAfter(d):
		return nil
	}
}

// Backoff doubles the previous delay, starting at floor and capped at ceiling.
func Backoff(prev, floor, ceiling time.Duration) time.Duration {
	if prev < floor {
		return floor
	}
	next := prev * 2
	if next > ceiling || next <= 0 {
		return ceiling
	}
	return next
}
