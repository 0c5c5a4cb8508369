package show

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"lifeshow/internal/circadian"
	"lifeshow/internal/core"
	"lifeshow/internal/render"
	pcore "lifeshow/pkg/core"
)

// Phi is the golden ratio; each ticker line scrolls slower by a power of it.
const Phi = 1.618033988749895

// Config holds every timing, layout and simulation constant of the show.
// Durations are at tempo 1; Tempo divides them all.
type Config struct {
	Size  pcore.Size
	Lines []string

	// Breath is the twinkle period and the length of the opening stargaze.
	Breath time.Duration
	// Heartbeat is the pause between ticker lines.
	Heartbeat time.Duration
	// FrameInterval is the redraw interval of static star scenes.
	FrameInterval time.Duration

	ScrollBase      time.Duration
	ScrollExponents []float64

	// SeedHold is the length of the dawn transition, split into DawnSteps.
	SeedHold  time.Duration
	DawnSteps int

	DissolvePhaseGens int
	DissolveTotalGens int
	// Schedule overrides the overlay schedule derived from the text height.
	Schedule []Overlay

	StaleGens int
	Density   float64

	StarCount int

	Circadian       []time.Duration
	CircadianCenter int
	CircadianStride int

	Palette render.Palette

	Tempo float64
}

// DefaultConfig returns the installation's settings for a 64x64 panel.
func DefaultConfig() Config {
	return Config{
		Size: pcore.Size{W: 64, H: 64},
		Lines: []string{
			"Fate isnt what were up against",
			"There is no design",
			"No flaws to find",
		},
		Breath:            5 * time.Second,
		Heartbeat:         750 * time.Millisecond,
		FrameInterval:     80 * time.Millisecond,
		ScrollBase:        47 * time.Millisecond,
		ScrollExponents:   []float64{0, 1, 1.5},
		SeedHold:          7500 * time.Millisecond,
		DawnSteps:         50,
		DissolvePhaseGens: 4,
		DissolveTotalGens: 32,
		StaleGens:         50,
		Density:           0.20,
		StarCount:         12,
		Circadian:         circadian.DefaultSteps,
		CircadianCenter:   circadian.DefaultCenter,
		CircadianStride:   circadian.DefaultStride,
		Palette:           render.DefaultPalette(),
		Tempo:             1,
	}
}

func (c Config) tempo() float64 {
	if c.Tempo <= 0 {
		return 1
	}
	return c.Tempo
}

func (c Config) scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) / c.tempo())
}

// TwinkleHz is the star twinkle frequency: one cycle per breath.
func (c Config) TwinkleHz() float64 {
	b := c.scaled(c.Breath)
	if b <= 0 {
		return 0
	}
	return 1 / b.Seconds()
}

// ScrollDelay is the per-column delay of ticker line i: ScrollBase·φ^e where
// e is the line's exponent, or its index when no exponent is configured.
func (c Config) ScrollDelay(i int) time.Duration {
	e := float64(i)
	if i < len(c.ScrollExponents) {
		e = c.ScrollExponents[i]
	}
	return c.scaled(time.Duration(float64(c.ScrollBase) * math.Pow(Phi, e)))
}

// DawnStepDelay is the wait between dawn frames.
func (c Config) DawnStepDelay() time.Duration {
	if c.DawnSteps <= 0 {
		return 0
	}
	return c.scaled(c.SeedHold) / time.Duration(c.DawnSteps)
}

// Validate reports configuration that the show cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Size.W <= 0 || c.Size.H <= 0:
		return fmt.Errorf("invalid size %dx%d", c.Size.W, c.Size.H)
	case len(c.Circadian) == 0:
		return fmt.Errorf("circadian ladder is empty")
	case c.CircadianStride <= 0:
		return fmt.Errorf("circadian stride must be positive, got %d", c.CircadianStride)
	case c.StaleGens <= 0:
		return fmt.Errorf("stale threshold must be positive, got %d", c.StaleGens)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density %.2f outside [0, 1]", c.Density)
	}
	return nil
}

// Parameters snapshots the configuration for logging.
func (c Config) Parameters() core.ParameterSnapshot {
	var rest time.Duration
	if len(c.Circadian) > 0 {
		rest = c.scaled(c.Circadian[clampIndex(c.CircadianCenter, len(c.Circadian))])
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Display",
			Params: []core.Parameter{
				intParam("w", "Width", c.Size.W),
				intParam("h", "Height", c.Size.H),
				floatParam("tempo", "Tempo", c.tempo()),
			},
		},
		{
			Name: "Intro",
			Params: []core.Parameter{
				durationParam("breath", "Breath", c.scaled(c.Breath)),
				durationParam("heartbeat", "Heartbeat", c.scaled(c.Heartbeat)),
				durationParam("scroll", "Scroll base", c.ScrollDelay(0)),
				durationParam("seed_hold", "Dawn", c.scaled(c.SeedHold)),
				intParam("stars", "Stars", c.StarCount),
				textParam("lines", "Lines", strings.Join(c.Lines, " / ")),
			},
		},
		{
			Name: "Life",
			Params: []core.Parameter{
				intParam("dissolve_gens", "Dissolve phase", c.DissolvePhaseGens),
				intParam("dissolve_total", "Dissolve total", c.DissolveTotalGens),
				intParam("stale", "Stale reset", c.StaleGens),
				floatParam("density", "Density", c.Density),
				intParam("stride", "Circadian stride", c.CircadianStride),
				durationParam("rest", "Resting tick", rest),
			},
		},
	}}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

func durationParam(key, label string, v time.Duration) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeDuration, Value: v.String()}
}

func textParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: v}
}
