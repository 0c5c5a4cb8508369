package display

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"

	"lifeshow/pkg/core"
)

// upperHalf packs two pixel rows into one character cell: the foreground
// paints the top pixel and the background the bottom one.
const upperHalf = '▀'

// Terminal renders frames on a tcell screen at two pixels per cell. Pressing
// q, Esc or Ctrl-C calls the cancel function it was built with.
type Terminal struct {
	screen tcell.Screen
	size   core.Size
	bufs   [2]*image.RGBA
	back   int
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewTerminal takes over the controlling terminal.
func NewTerminal(size core.Size, cancel context.CancelFunc) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewTerminalScreen(screen, size, cancel)
}

// NewTerminalScreen drives an existing, uninitialised screen.
func NewTerminalScreen(screen tcell.Screen, size core.Size, cancel context.CancelFunc) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	t := &Terminal{
		screen: screen,
		size:   size,
		bufs:   [2]*image.RGBA{newCanvas(size), newCanvas(size)},
		cancel: cancel,
	}
	go t.pollKeys()
	return t, nil
}

// pollKeys runs until the screen is finalised.
func (t *Terminal) pollKeys() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if quitKey(ev) && t.cancel != nil {
				t.cancel()
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Size returns the pixel dimensions.
func (t *Terminal) Size() core.Size { return t.size }

// Canvas returns the current back buffer.
func (t *Terminal) Canvas() *image.RGBA { return t.bufs[t.back] }

// Swap draws frame onto the screen and shows it.
func (t *Terminal) Swap(ctx context.Context, frame *image.RGBA) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return frame, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return frame, ErrClosed
	}
	t.draw(frame)
	t.screen.Show()
	if frame == t.bufs[t.back] {
		t.back = 1 - t.back
	}
	return t.bufs[t.back], nil
}

func (t *Terminal) draw(frame *image.RGBA) {
	w, h := t.size.W, t.size.H
	for row := 0; row*2 < h; row++ {
		y := row * 2
		for x := 0; x < w; x++ {
			top := frame.RGBAAt(x, y)
			var bottom color.RGBA
			if y+1 < h {
				bottom = frame.RGBAAt(x, y+1)
			}
			t.screen.SetContent(x, row, upperHalf, nil, CellStyle(top, bottom))
		}
	}
}

// CellStyle is the style of a cell showing top over bottom.
func CellStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}

// Clear blanks the screen.
func (t *Terminal) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.screen.Clear()
	t.screen.Show()
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()
	t.screen.Fini()
	return nil
}
