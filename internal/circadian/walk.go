// Package circadian drifts the generation tempo with a bounded random walk
// over a fixed ladder of tick durations.
package circadian

import "time"

// Source draws integers in [0, n).
type Source interface {
	IntN(n int) int
}

// DefaultSteps is the tempo ladder, fastest first, centred on a resting
// 750ms heartbeat (80 BPM).
var DefaultSteps = []time.Duration{
	600 * time.Millisecond,
	632 * time.Millisecond,
	674 * time.Millisecond,
	714 * time.Millisecond,
	750 * time.Millisecond,
	800 * time.Millisecond,
	857 * time.Millisecond,
	938 * time.Millisecond,
	1034 * time.Millisecond,
}

const (
	// DefaultCenter indexes the resting tempo in DefaultSteps.
	DefaultCenter = 4
	// DefaultStride is the number of generations between walk steps.
	DefaultStride = 8
)

// Walk tracks where the tempo currently sits on its ladder. It does not know
// when it is stepped; callers decide the cadence.
type Walk struct {
	steps []time.Duration
	pos   int
}

// New starts a walk at center, clamped into the ladder.
func New(steps []time.Duration, center int) *Walk {
	if len(steps) == 0 {
		steps = DefaultSteps
	}
	if center < 0 {
		center = 0
	}
	if center >= len(steps) {
		center = len(steps) - 1
	}
	return &Walk{steps: steps, pos: center}
}

// Step moves the walk by -1, 0 or +1 with equal odds and returns the new
// position. Moves off either end reflect back inside the ladder.
func (w *Walk) Step(src Source) int {
	if len(w.steps) == 1 {
		return w.pos
	}
	next := w.pos + src.IntN(3) - 1
	switch {
	case next < 0:
		next = 1
	case next >= len(w.steps):
		next = len(w.steps) - 2
	}
	w.pos = next
	return w.pos
}

// Position returns the current ladder index.
func (w *Walk) Position() int { return w.pos }

// Len returns the number of ladder steps.
func (w *Walk) Len() int { return len(w.steps) }

// Delay returns the tick duration at the current position.
func (w *Walk) Delay() time.Duration { return w.steps[w.pos] }

// BPM expresses the current delay as beats per minute, rounded.
func (w *Walk) BPM() int {
	d := w.Delay()
	if d <= 0 {
		return 0
	}
	return int((time.Minute + d/2) / d)
}

// Scaled returns a copy of steps with every duration divided by tempo.
func Scaled(steps []time.Duration, tempo float64) []time.Duration {
	if tempo <= 0 {
		tempo = 1
	}
	out := make([]time.Duration, len(steps))
	for i, d := range steps {
		out[i] = time.Duration(float64(d) / tempo)
	}
	return out
}
