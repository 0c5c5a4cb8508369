//go:build !ebiten

package display

import (
	"context"
	"errors"
	"image"

	"lifeshow/pkg/core"
)

// ErrNoWindow is returned by NewWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("window device requires building with -tags ebiten")

// Window is unavailable in headless builds.
type Window struct{}

// NewWindow always fails in the headless build.
func NewWindow(core.Size, int, string, context.CancelFunc) (*Window, error) {
	return nil, ErrNoWindow
}

// Run is a no-op in the headless build.
func (w *Window) Run() error { return ErrNoWindow }

// SetStatus is a no-op in the headless build.
func (w *Window) SetStatus(string) {}

// Size is zero in the headless build.
func (w *Window) Size() core.Size { return core.Size{} }

// Canvas is nil in the headless build.
func (w *Window) Canvas() *image.RGBA { return nil }

// Swap always fails in the headless build.
func (w *Window) Swap(context.Context, *image.RGBA) (*image.RGBA, error) { return nil, ErrNoWindow }

// Clear is a no-op in the headless build.
func (w *Window) Clear() error { return nil }

// Close is a no-op in the headless build.
func (w *Window) Close() error { return nil }
