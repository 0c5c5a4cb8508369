//go:build ebiten

package display

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifeshow/internal/ui"
	"lifeshow/pkg/core"
)

// Window previews the show in a desktop window, magnified by scale, with a
// status strip underneath. Run must be called on the main goroutine; frames
// arrive from the show goroutine through Swap.
type Window struct {
	size   core.Size
	scale  int
	title  string
	canvas *image.RGBA
	cancel context.CancelFunc

	frames chan *image.RGBA
	shown  chan struct{}
	done   chan struct{}
	once   sync.Once
	blank  atomic.Bool

	view *ebiten.Image
	hud  *ui.HUD
}

// NewWindow prepares a preview window. Closing it, or pressing q or Esc,
// calls cancel.
func NewWindow(size core.Size, scale int, title string, cancel context.CancelFunc) (*Window, error) {
	if scale <= 0 {
		scale = 1
	}
	return &Window{
		size:   size,
		scale:  scale,
		title:  title,
		canvas: newCanvas(size),
		cancel: cancel,
		frames: make(chan *image.RGBA),
		shown:  make(chan struct{}, 1),
		done:   make(chan struct{}),
		hud:    ui.NewHUD(size.W * scale),
	}, nil
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	defer w.once.Do(func() { close(w.done) })
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.size.W*w.scale, w.size.H*w.scale+ui.Height)
	ebiten.SetWindowClosingHandled(true)
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// SetStatus updates the status strip.
func (w *Window) SetStatus(s string) { w.hud.SetStatus(s) }

// Size returns the pixel dimensions.
func (w *Window) Size() core.Size { return w.size }

// Canvas returns the drawing buffer.
func (w *Window) Canvas() *image.RGBA { return w.canvas }

// Swap hands frame to the window and waits until it has been uploaded. The
// same buffer is returned since the window keeps its own copy.
func (w *Window) Swap(ctx context.Context, frame *image.RGBA) (*image.RGBA, error) {
	select {
	case w.frames <- frame:
	case <-ctx.Done():
		return frame, ctx.Err()
	case <-w.done:
		return frame, ErrClosed
	}
	select {
	case <-w.shown:
		return frame, nil
	case <-ctx.Done():
		return frame, ctx.Err()
	case <-w.done:
		return frame, ErrClosed
	}
}

// Clear blanks the preview.
func (w *Window) Clear() error {
	w.blank.Store(true)
	return nil
}

// Close stops accepting frames.
func (w *Window) Close() error {
	w.once.Do(func() { close(w.done) })
	return nil
}

// Update uploads a pending frame and handles quit requests. The loop ends
// once Close has been called.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if w.cancel != nil {
			w.cancel()
		}
		return ebiten.Termination
	}
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}
	if w.view == nil {
		w.view = ebiten.NewImage(w.size.W, w.size.H)
	}
	select {
	case f := <-w.frames:
		w.blank.Store(false)
		w.view.WritePixels(f.Pix)
		w.shown <- struct{}{}
	default:
	}
	return nil
}

// Draw renders the magnified frame and the status strip.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if w.view != nil && !w.blank.Load() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w.scale), float64(w.scale))
		screen.DrawImage(w.view, op)
	}
	w.hud.Draw(screen, w.size.H*w.scale)
}

// Layout returns the logical screen size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.size.W * w.scale, w.size.H*w.scale + ui.Height
}
