// Package stars models a small set of twinkling point lights.
package stars

import (
	"image"
	"math"
	"time"

	"lifeshow/pkg/core"
)

// Star is a fixed point of light with its own twinkle phase.
type Star struct {
	Row, Col int
	Phase    float64
}

// Brightness returns max(0, sin(2π·hz·t + phase)) for the elapsed time t.
// The clamp turns the sine into pulses separated by darkness.
func (s Star) Brightness(elapsed time.Duration, hz float64) float64 {
	v := math.Sin(2*math.Pi*hz*elapsed.Seconds() + s.Phase)
	if v < 0 {
		return 0
	}
	return v
}

// Field is the set of stars chosen at startup plus the instant they appeared.
type Field struct {
	Stars []Star
	Hz    float64
	start time.Time
}

// New samples count distinct positions of a size.W×size.H grid that lie
// outside exclude, each with a uniformly random phase in [0, 2π). When fewer
// than count candidates exist every candidate becomes a star.
func New(size core.Size, exclude image.Rectangle, count int, hz float64, rng *core.RNG, start time.Time) *Field {
	sky := make([]image.Point, 0, size.Area())
	for r := 0; r < size.H; r++ {
		for c := 0; c < size.W; c++ {
			p := image.Pt(c, r)
			if p.In(exclude) {
				continue
			}
			sky = append(sky, p)
		}
	}

	f := &Field{Hz: hz, start: start}
	for i := 0; i < count && len(sky) > 0; i++ {
		idx := rng.IntN(len(sky))
		p := sky[idx]
		sky[idx] = sky[len(sky)-1]
		sky = sky[:len(sky)-1]
		f.Stars = append(f.Stars, Star{Row: p.Y, Col: p.X, Phase: rng.Float64() * 2 * math.Pi})
	}
	return f
}

// Elapsed returns the time since the field was created.
func (f *Field) Elapsed(now time.Time) time.Duration { return now.Sub(f.start) }

// Brightness returns the brightness of star i at now.
func (f *Field) Brightness(i int, now time.Time) float64 {
	return f.Stars[i].Brightness(f.Elapsed(now), f.Hz)
}
