package show

import (
	"math"
	"testing"
	"time"
)

func TestScrollDelaySlowsByGoldenRatio(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ScrollDelay(0); got != 47*time.Millisecond {
		t.Fatalf("first line delay %v, expected 47ms", got)
	}
	base := 47 * time.Millisecond
	want := time.Duration(float64(base) * Phi)
	if got := cfg.ScrollDelay(1); got != want {
		t.Fatalf("second line delay %v, expected %v", got, want)
	}
	prev := time.Duration(0)
	for i := 0; i < 4; i++ {
		d := cfg.ScrollDelay(i)
		if d <= prev {
			t.Fatalf("line %d delay %v does not exceed %v", i, d, prev)
		}
		prev = d
	}
}

func TestTempoScalesDurations(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.DawnStepDelay(); got != 150*time.Millisecond {
		t.Fatalf("dawn step %v, expected 150ms", got)
	}
	if hz := cfg.TwinkleHz(); math.Abs(hz-0.2) > 1e-9 {
		t.Fatalf("twinkle %.3f Hz, expected 0.2", hz)
	}

	cfg.Tempo = 2
	if got := cfg.DawnStepDelay(); got != 75*time.Millisecond {
		t.Fatalf("dawn step at tempo 2 is %v", got)
	}
	if hz := cfg.TwinkleHz(); math.Abs(hz-0.4) > 1e-9 {
		t.Fatalf("twinkle at tempo 2 is %.3f Hz", hz)
	}

	cfg.Tempo = 0
	if got := cfg.DawnStepDelay(); got != 150*time.Millisecond {
		t.Fatalf("non-positive tempo should fall back to 1, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	broken := []func(*Config){
		func(c *Config) { c.Size.W = 0 },
		func(c *Config) { c.Circadian = nil },
		func(c *Config) { c.CircadianStride = 0 },
		func(c *Config) { c.StaleGens = 0 },
		func(c *Config) { c.Density = 1.5 },
	}
	for i, mutate := range broken {
		cfg := DefaultConfig()
		mutate(&cfg)
		if cfg.Validate() == nil {
			t.Fatalf("case %d: broken config accepted", i)
		}
	}
}

func TestParametersSnapshot(t *testing.T) {
	snap := DefaultConfig().Parameters()
	if len(snap.Groups) != 3 {
		t.Fatalf("%d parameter groups, expected 3", len(snap.Groups))
	}
	var rest string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if p.Key == "rest" {
				rest = p.Value
			}
		}
	}
	if rest != "750ms" {
		t.Fatalf("resting tick %q, expected 750ms", rest)
	}
}
