package render

import (
	"image/color"
	"math"
)

// Palette names the colours of the show.
type Palette struct {
	Alive color.RGBA // live cells and text
	Sea   color.RGBA // dead cells, daytime background
	Night color.RGBA // night background
	Star  color.RGBA
}

// DefaultPalette is green life on a blue sea under a black, starry sky.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Sea:   color.RGBA{R: 0, G: 0, B: 255, A: 255},
		Night: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Star:  color.RGBA{R: 200, G: 220, B: 255, A: 255},
	}
}

// Lerp blends a towards b by t, clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
