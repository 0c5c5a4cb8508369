//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// Status is always empty in the headless build.
func (h *HUD) Status() string { return "" }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
