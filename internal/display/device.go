// Package display holds the pixel outputs the show can drive: an in-memory
// buffer for tests and headless runs, a terminal and a preview window.
package display

import (
	"context"
	"image"

	"lifeshow/pkg/core"
)

// Device is a fixed-size RGB pixel output.
type Device interface {
	Size() core.Size
	// Canvas returns the buffer to draw the first frame into.
	Canvas() *image.RGBA
	// Swap presents frame, blocking until it is shown, and returns the
	// buffer to draw the next frame into.
	Swap(ctx context.Context, frame *image.RGBA) (*image.RGBA, error)
	// Clear blanks the output.
	Clear() error
	Close() error
}

func newCanvas(size core.Size) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, size.W, size.H))
}
