// Package render projects automaton, star and text state onto RGBA frames.
package render

import (
	"image"
	"image/color"
	"time"

	"lifeshow/internal/stars"
	"lifeshow/pkg/core"
)

const (
	// minStarMult hides the star field entirely once it has faded this far.
	minStarMult = 0.01
	// minStarBrightness skips stars too dim to register on the panel.
	minStarBrightness = 0.05
)

// Grid paints binary cell data into dst: live cells in alive, the rest in dead.
func Grid(dst *image.RGBA, cells []uint8, alive, dead color.RGBA) {
	w := dst.Rect.Dx()
	h := dst.Rect.Dy()
	if len(cells) != w*h {
		return
	}
	for y := 0; y < h; y++ {
		fillBinaryRGBA(dst.Pix[y*dst.Stride:y*dst.Stride+4*w], cells[y*w:(y+1)*w], alive, dead)
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		base := i * 4
		col := off
		if c != 0 {
			col = on
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Scene is one frame of the night sky: background, stars and an optional
// line of text.
type Scene struct {
	Background color.RGBA
	Text       core.Bitmap
	TextX      int
	TextY      int
	TextColor  color.RGBA

	Stars     *stars.Field
	StarColor color.RGBA
	StarMult  float64
	Now       time.Time
}

// Night paints s into dst. Text pixels hide any star at the same position.
func Night(dst *image.RGBA, s Scene) {
	b := dst.Rect
	fill(dst, s.Background)

	lit := func(x, y int) bool {
		return s.Text.At(x-s.TextX, y-s.TextY)
	}

	if s.Stars != nil && s.StarMult > minStarMult {
		for i, st := range s.Stars.Stars {
			x, y := b.Min.X+st.Col, b.Min.Y+st.Row
			if !image.Pt(x, y).In(b) || lit(st.Col, st.Row) {
				continue
			}
			v := s.Stars.Brightness(i, s.Now) * s.StarMult
			if v > minStarBrightness {
				dst.SetRGBA(x, y, Lerp(s.Background, s.StarColor, v))
			}
		}
	}

	for ty := 0; ty < s.Text.H; ty++ {
		for tx := 0; tx < s.Text.W; tx++ {
			if !s.Text.At(tx, ty) {
				continue
			}
			x, y := b.Min.X+s.TextX+tx, b.Min.Y+s.TextY+ty
			if image.Pt(x, y).In(b) {
				dst.SetRGBA(x, y, s.TextColor)
			}
		}
	}
}

func fill(dst *image.RGBA, c color.RGBA) {
	w := dst.Rect.Dx()
	for y := 0; y < dst.Rect.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+4*w]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}
