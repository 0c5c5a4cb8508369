package app

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"lifeshow/internal/core"
	"lifeshow/internal/display"
	"lifeshow/internal/show"
	"lifeshow/internal/text"
	pcore "lifeshow/pkg/core"
	"lifeshow/pkg/sims/life"
)

func TestRunMemoryPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Device = "memory"
	cfg.Pattern = "glider"
	cfg.Seed = 1
	cfg.Tempo = 100
	cfg.Duration = 300 * time.Millisecond

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	log := out.String()
	for _, want := range []string{"cruising from pattern glider", "=== Cruising ===", "Gen 1: pop=5", "Stopped after"} {
		if !strings.Contains(log, want) {
			t.Fatalf("output missing %q:\n%s", want, log)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := NewConfig()
	cfg.Device = "memory"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := Run(ctx, cfg, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Stopped after 0 generations") {
		t.Fatalf("output %q", out.String())
	}
}

func TestRunRejectsUnknownDevice(t *testing.T) {
	cfg := NewConfig()
	cfg.Device = "hologram"
	if err := Run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("unknown device accepted")
	}
}

func TestSkipIntroReseedIsFreshSoup(t *testing.T) {
	cfg := NewConfig()
	cfg.SkipIntro = true
	scfg := cfg.Show()
	scfg.Size = pcore.Size{W: 16, H: 16}

	rng := pcore.NewRNG(7)
	start, err := startingGrid(cfg, scfg.Density, rng)
	if err != nil || start == nil {
		t.Fatalf("startingGrid: %v", err)
	}
	d, err := show.New(scfg, display.NewMemory(scfg.Size), text.New(1), core.NewManualClock(time.Unix(0, 0)), rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var initial, reseeded []uint8
	d.SetObserver(show.ObserverFunc(func(e show.Event) {
		switch e.Kind {
		case show.EventReseed:
			if reseeded == nil {
				reseeded = slices.Clone(d.Life().Cells())
			}
			cancel()
		case show.EventGeneration:
			if e.Gen >= 20000 {
				cancel()
			}
		}
	}))
	err = d.Cruise(ctx, func(l *life.Life) {
		start(l)
		initial = slices.Clone(l.Cells())
	})
	if err != nil {
		t.Fatalf("Cruise: %v", err)
	}
	if reseeded == nil {
		t.Fatal("the soup never went stale or extinct")
	}

	// Replaying the opening stream would reproduce the first grid moved
	// along by however many draws the tempo walk made in between.
	n := len(initial)
	for shift := 0; shift <= n/2; shift++ {
		if slices.Equal(reseeded[:n-shift], initial[shift:]) {
			t.Fatalf("reseeded grid is the opening grid shifted by %d cells", shift)
		}
	}
}
