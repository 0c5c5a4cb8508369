package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSystemClockSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	err := SystemClock{}.Sleep(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("cancelled sleep did not return promptly")
	}
}

func TestSystemClockSleepElapses(t *testing.T) {
	if err := (SystemClock{}).Sleep(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	if err := c.Sleep(context.Background(), 750*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != time.Second {
		t.Fatalf("elapsed %v, expected 1s", got)
	}
	if c.Slept() != 750*time.Millisecond || c.Naps() != 1 {
		t.Fatalf("slept %v over %d naps", c.Slept(), c.Naps())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Sleep(ctx, time.Second); err == nil {
		t.Fatal("sleep on a cancelled context should fail")
	}
	if c.Naps() != 1 {
		t.Fatal("cancelled sleep must not advance the clock")
	}
}
