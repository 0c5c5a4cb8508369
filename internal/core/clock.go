package core

import (
	"context"
	"time"
)

// Clock supplies wall time and cancellable waits to the show loop.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep waits on a timer or the context, whichever finishes first.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ManualClock advances only when slept on. Sleep returns immediately, which
// lets a whole show run in a test without real waits.
type ManualClock struct {
	now   time.Time
	slept time.Duration
	naps  int
}

// NewManualClock starts a manual clock at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the simulated time.
func (c *ManualClock) Now() time.Time { return c.now }

// Sleep advances simulated time by d unless ctx is already done.
func (c *ManualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		c.now = c.now.Add(d)
		c.slept += d
	}
	c.naps++
	return nil
}

// Advance moves simulated time forward without counting as a sleep.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Slept returns the total simulated sleep time.
func (c *ManualClock) Slept() time.Duration { return c.slept }

// Naps returns how many times Sleep succeeded.
func (c *ManualClock) Naps() int { return c.naps }
