// Package text turns strings into lit/unlit bitmaps using a fixed-cell
// bitmap font.
package text

import (
	"image"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lifeshow/pkg/core"
)

// litThreshold is the minimum glyph coverage treated as a lit pixel.
const litThreshold = 0x80

// Rasterizer renders strings with a monospaced bitmap face, magnified by an
// integer scale so small fonts read on a coarse pixel display.
type Rasterizer struct {
	face  *basicfont.Face
	scale int
}

// New returns a Rasterizer over basicfont.Face7x13.
func New(scale int) *Rasterizer {
	return NewWithFace(basicfont.Face7x13, scale)
}

// NewWithFace returns a Rasterizer over the provided basicfont face.
func NewWithFace(face *basicfont.Face, scale int) *Rasterizer {
	if scale <= 0 {
		scale = 1
	}
	return &Rasterizer{face: face, scale: scale}
}

// CellWidth is the horizontal advance of one character in pixels.
func (r *Rasterizer) CellWidth() int { return r.face.Advance * r.scale }

// CellHeight is the height of one character cell in pixels.
func (r *Rasterizer) CellHeight() int { return r.face.Height * r.scale }

// Width returns the pixel width of s.
func (r *Rasterizer) Width(s string) int {
	return utf8.RuneCountInString(s) * r.CellWidth()
}

// Bitmap rasterizes s. The result is Width(s) wide and CellHeight tall.
func (r *Rasterizer) Bitmap(s string) core.Bitmap {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return core.NewBitmap(0, r.CellHeight())
	}
	w := n * r.face.Advance
	h := r.face.Height
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: r.face,
		Dot:  fixed.P(0, r.face.Ascent),
	}
	d.DrawString(s)

	bm := core.NewBitmap(w*r.scale, h*r.scale)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.AlphaAt(x, y).A < litThreshold {
				continue
			}
			for sy := 0; sy < r.scale; sy++ {
				for sx := 0; sx < r.scale; sx++ {
					bm.Set(x*r.scale+sx, y*r.scale+sy, true)
				}
			}
		}
	}
	return bm
}

// LastWord returns the final space-separated word of line and the index, in
// characters, where it starts.
func LastWord(line string) (string, int) {
	trimmed := strings.TrimRight(line, " ")
	i := strings.LastIndex(trimmed, " ")
	word := trimmed[i+1:]
	return word, utf8.RuneCountInString(trimmed[:i+1])
}
