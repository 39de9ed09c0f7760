package bots

import (
	"context"
	"time"
)

// Bot is one trading strategy driven against a connected Client until ctx
// is cancelled. Run owns the connection's lifetime: it should Close the
// client before returning.
type Bot interface {
	Run(ctx context.Context, client *Client)
}

// sleep pauses for d or returns early if ctx is cancelled, reporting which
// happened.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
