package display

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"lifeshow/pkg/core"
)

func TestMemoryRecordsFrames(t *testing.T) {
	m := NewMemory(core.Size{W: 3, H: 2})
	green := color.RGBA{G: 255, A: 255}

	frame := m.Canvas()
	frame.SetRGBA(2, 1, green)
	next, err := m.Swap(context.Background(), frame)
	if err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if next == frame {
		t.Fatal("Swap returned the presented buffer")
	}
	if m.Frames() != 1 {
		t.Fatalf("frames %d, expected 1", m.Frames())
	}
	if got := m.Last().RGBAAt(2, 1); got != green {
		t.Fatalf("last frame pixel %v", got)
	}

	// Drawing into the new back buffer leaves the recorded frame alone.
	next.SetRGBA(2, 1, color.RGBA{})
	if got := m.Last().RGBAAt(2, 1); got != green {
		t.Fatalf("recorded frame changed to %v", got)
	}
}

func TestMemoryOnFrame(t *testing.T) {
	m := NewMemory(core.Size{W: 1, H: 1})
	var seen []int
	m.OnFrame = func(n int, _ *image.RGBA) { seen = append(seen, n) }
	frame := m.Canvas()
	for i := 0; i < 3; i++ {
		var err error
		if frame, err = m.Swap(context.Background(), frame); err != nil {
			t.Fatalf("Swap: %v", err)
		}
	}
	if len(seen) != 3 || seen[2] != 3 {
		t.Fatalf("OnFrame saw %v", seen)
	}
}

func TestMemorySwapHonoursContext(t *testing.T) {
	m := NewMemory(core.Size{W: 1, H: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Swap(ctx, m.Canvas()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Swap on cancelled context returned %v", err)
	}
	if m.Frames() != 0 {
		t.Fatal("cancelled swap counted a frame")
	}
	m.Close()
	if _, err := m.Swap(context.Background(), m.Canvas()); !errors.Is(err, ErrClosed) {
		t.Fatalf("Swap after Close returned %v", err)
	}
}
