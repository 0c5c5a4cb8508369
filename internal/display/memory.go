package display

import (
	"context"
	"errors"
	"image"

	"lifeshow/pkg/core"
)

// ErrClosed is returned by Swap after Close.
var ErrClosed = errors.New("display closed")

// Memory is a headless double-buffered device. It keeps a copy of the last
// presented frame and counts frames.
type Memory struct {
	size   core.Size
	bufs   [2]*image.RGBA
	back   int
	last   *image.RGBA
	frames int
	closed bool

	// OnFrame, when set, is called with the frame number and a view of each
	// presented frame. The view is only valid during the call.
	OnFrame func(n int, frame *image.RGBA)
}

// NewMemory allocates a memory device of the given size.
func NewMemory(size core.Size) *Memory {
	return &Memory{
		size: size,
		bufs: [2]*image.RGBA{newCanvas(size), newCanvas(size)},
		last: newCanvas(size),
	}
}

// Size returns the pixel dimensions.
func (m *Memory) Size() core.Size { return m.size }

// Canvas returns the current back buffer.
func (m *Memory) Canvas() *image.RGBA { return m.bufs[m.back] }

// Swap records frame and hands back the other buffer.
func (m *Memory) Swap(ctx context.Context, frame *image.RGBA) (*image.RGBA, error) {
	if m.closed {
		return frame, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return frame, err
	}
	copy(m.last.Pix, frame.Pix)
	m.frames++
	if m.OnFrame != nil {
		m.OnFrame(m.frames, m.last)
	}
	if frame == m.bufs[m.back] {
		m.back = 1 - m.back
	}
	return m.bufs[m.back], nil
}

// Frames returns the number of presented frames.
func (m *Memory) Frames() int { return m.frames }

// Last returns the most recently presented frame.
func (m *Memory) Last() *image.RGBA { return m.last }

// Clear blanks the last frame.
func (m *Memory) Clear() error {
	clear(m.last.Pix)
	return nil
}

// Close marks the device closed.
func (m *Memory) Close() error {
	m.closed = true
	return nil
}
