//go:build ebiten

package ui

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 6
	headerBaseline = 12
)

// HUD renders a status strip beneath the preview. SetStatus may be called
// from any goroutine; Draw runs on the ebiten loop.
type HUD struct {
	width int
	panel *ebiten.Image

	mu     sync.Mutex
	status string
}

// NewHUD constructs a HUD of the provided width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// SetStatus replaces the status text.
func (h *HUD) SetStatus(s string) {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.status = s
	h.mu.Unlock()
}

// Status returns the current status text.
func (h *HUD) Status() string {
	if h == nil {
		return ""
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

// Draw paints the strip at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil || h.width <= 0 {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, Height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(h.panel, h.Status(), basicfont.Face7x13, panelPadding, headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
