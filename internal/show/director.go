// Package show sequences the installation: stargazing, the scrolling ticker,
// dawn, the scripted dissolve of the seed word and open-ended cruising.
package show

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"lifeshow/internal/circadian"
	"lifeshow/internal/core"
	"lifeshow/internal/render"
	"lifeshow/internal/stars"
	"lifeshow/internal/text"
	pcore "lifeshow/pkg/core"
	"lifeshow/pkg/sims/life"
)

// Device is the pixel output the director draws on. Swap presents frame,
// blocking until it is visible, and returns the buffer to draw into next.
type Device interface {
	Canvas() *image.RGBA
	Swap(ctx context.Context, frame *image.RGBA) (*image.RGBA, error)
}

// Font rasterizes ticker text with fixed-size character cells.
type Font interface {
	Bitmap(s string) pcore.Bitmap
	CellWidth() int
	CellHeight() int
}

// Director runs the show on a single goroutine. Cancellation of the context
// passed to Run or Cruise is observed after every presented frame and every
// sleep.
type Director struct {
	cfg   Config
	dev   Device
	font  Font
	clock core.Clock
	rng   *pcore.RNG
	obs   Observer

	canvas *image.RGBA
	life   *life.Life
	field  *stars.Field
	walk   *circadian.Walk

	phase   Phase
	gen     int
	stale   int
	lastPop int

	textY int
	word  pcore.Bitmap
	wordX int
}

// New prepares a director for cfg drawing on dev.
func New(cfg Config, dev Device, font Font, clock core.Clock, rng *pcore.RNG) (*Director, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("show config: %w", err)
	}
	canvas := dev.Canvas()
	if b := canvas.Bounds(); b.Dx() != cfg.Size.W || b.Dy() != cfg.Size.H {
		return nil, fmt.Errorf("device is %dx%d, show expects %dx%d", b.Dx(), b.Dy(), cfg.Size.W, cfg.Size.H)
	}
	return &Director{
		cfg:    cfg,
		dev:    dev,
		font:   font,
		clock:  clock,
		rng:    rng,
		canvas: canvas,
		life:   life.New(cfg.Size.W, cfg.Size.H),
		walk:   circadian.New(circadian.Scaled(cfg.Circadian, cfg.tempo()), cfg.CircadianCenter),
		textY:  (cfg.Size.H - font.CellHeight()) / 2,
	}, nil
}

// SetObserver registers the receiver of show events.
func (d *Director) SetObserver(o Observer) { d.obs = o }

// Phase returns the current phase.
func (d *Director) Phase() Phase { return d.phase }

// Generation returns the number of generations computed so far.
func (d *Director) Generation() int { return d.gen }

// Life exposes the automaton.
func (d *Director) Life() *life.Life { return d.life }

// Stars exposes the star field, nil until the show has started.
func (d *Director) Stars() *stars.Field { return d.field }

// Run plays the whole show until ctx is done. Cancellation is a normal end
// and yields a nil error; only device failures are returned.
func (d *Director) Run(ctx context.Context) error {
	err := d.intro(ctx)
	if err == nil {
		err = d.simulate(ctx, NewDissolve(d.schedule(), d.cfg.DissolveTotalGens))
	}
	return quiet(err)
}

// Cruise skips the intro: seed prepares the grid and the automaton runs in
// the Cruising phase until ctx is done.
func (d *Director) Cruise(ctx context.Context, seed func(*life.Life)) error {
	d.life.Clear()
	if seed != nil {
		seed(d.life)
	}
	return quiet(d.simulate(ctx, nil))
}

func quiet(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (d *Director) schedule() []Overlay {
	if d.cfg.Schedule != nil {
		return d.cfg.Schedule
	}
	return DefaultSchedule(d.cfg.Size.H, d.font.CellHeight(), d.cfg.DissolvePhaseGens)
}

func (d *Director) emit(e Event) {
	if d.obs == nil {
		return
	}
	e.Phase = d.phase
	d.obs.Observe(e)
}

func (d *Director) enter(p Phase) {
	d.phase = p
	d.emit(Event{Kind: EventPhase})
}

// FinalStop returns where the final ticker line stops: the x offset of the
// line at rest, the last word's bitmap and the x at which that word is
// centred on the display.
func (d *Director) FinalStop(line string) (stop int, word pcore.Bitmap, wordX int) {
	w, start := text.LastWord(line)
	word = d.font.Bitmap(w)
	wordX = (d.cfg.Size.W - word.W) / 2
	return wordX - start*d.font.CellWidth(), word, wordX
}

func (d *Director) intro(ctx context.Context) error {
	band := image.Rect(0, d.textY, d.cfg.Size.W, d.textY+d.font.CellHeight())
	d.field = stars.New(d.cfg.Size, band, d.cfg.StarCount, d.cfg.TwinkleHz(), d.rng, d.clock.Now())

	d.enter(Stargazing)
	if err := d.pause(ctx, d.cfg.scaled(d.cfg.Breath)); err != nil {
		return err
	}

	d.enter(TickerScroll)
	lines := d.cfg.Lines
	final := ""
	if len(lines) > 0 {
		final = lines[len(lines)-1]
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		d.emit(Event{Kind: EventLine, Line: i, Text: line})
		bm := d.font.Bitmap(line)
		if err := d.scroll(ctx, bm, -bm.W, d.cfg.ScrollDelay(i)); err != nil {
			return err
		}
		if err := d.pause(ctx, d.cfg.scaled(d.cfg.Heartbeat)); err != nil {
			return err
		}
	}

	d.emit(Event{Kind: EventLine, Line: len(lines), Text: final, Final: true})
	stop, word, wordX := d.FinalStop(final)
	if err := d.scroll(ctx, d.font.Bitmap(final), stop, d.cfg.ScrollDelay(len(lines))); err != nil {
		return err
	}
	d.word, d.wordX = word, wordX

	d.enter(DawnTransition)
	if err := d.dawn(ctx); err != nil {
		return err
	}
	d.life.SeedFrom(d.word, d.wordX, d.textY)
	d.emit(Event{Kind: EventSeed, Pop: d.life.Population()})
	return nil
}

// pause shows the bare night sky for dur, redrawing every FrameInterval so
// the stars keep twinkling.
func (d *Director) pause(ctx context.Context, dur time.Duration) error {
	step := d.cfg.scaled(d.cfg.FrameInterval)
	if step <= 0 {
		step = dur
	}
	for elapsed := time.Duration(0); elapsed < dur; {
		d.night(pcore.Bitmap{}, 0, d.cfg.Palette.Night, 1)
		if err := d.present(ctx); err != nil {
			return err
		}
		wait := min(step, dur-elapsed)
		if err := d.clock.Sleep(ctx, wait); err != nil {
			return err
		}
		elapsed += wait
	}
	return nil
}

// scroll moves bm from the right edge leftwards one column per frame until
// its x offset reaches stop.
func (d *Director) scroll(ctx context.Context, bm pcore.Bitmap, stop int, delay time.Duration) error {
	for x := d.cfg.Size.W; x > stop; x-- {
		d.night(bm, x, d.cfg.Palette.Night, 1)
		if err := d.present(ctx); err != nil {
			return err
		}
		if err := d.clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}

func (d *Director) dawn(ctx context.Context) error {
	pal := d.cfg.Palette
	delay := d.cfg.DawnStepDelay()
	for step := 0; step < d.cfg.DawnSteps; step++ {
		t := float64(step) / float64(d.cfg.DawnSteps)
		d.night(d.word, d.wordX, render.Lerp(pal.Night, pal.Sea, t), 1-t)
		if err := d.present(ctx); err != nil {
			return err
		}
		if err := d.clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}

func (d *Director) night(bm pcore.Bitmap, x int, bg color.RGBA, starMult float64) {
	render.Night(d.canvas, render.Scene{
		Background: bg,
		Text:       bm,
		TextX:      x,
		TextY:      d.textY,
		TextColor:  d.cfg.Palette.Alive,
		Stars:      d.field,
		StarColor:  d.cfg.Palette.Star,
		StarMult:   starMult,
		Now:        d.clock.Now(),
	})
}

func (d *Director) present(ctx context.Context) error {
	next, err := d.dev.Swap(ctx, d.canvas)
	if err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	d.canvas = next
	return ctx.Err()
}

// simulate drives the automaton one generation per tick. With a dissolve
// schedule it starts in Dissolving and moves to Cruising once the schedule
// is done; without one it cruises from the start.
func (d *Director) simulate(ctx context.Context, dis *Dissolve) error {
	if dis != nil {
		d.enter(Dissolving)
	} else {
		d.enter(Cruising)
	}
	d.stale = 0
	d.lastPop = d.life.Population()
	pal := d.cfg.Palette

	for {
		render.Grid(d.canvas, d.life.Cells(), pal.Alive, pal.Sea)
		if err := d.present(ctx); err != nil {
			return err
		}

		d.life.Step()
		d.gen++
		pop := d.life.Population()
		if pop == d.lastPop {
			d.stale++
		} else {
			d.stale = 0
		}
		d.lastPop = pop
		d.emit(Event{Kind: EventGeneration, Gen: d.gen, Pop: pop})

		if d.phase == Dissolving {
			if o, ok := dis.Due(d.gen); ok {
				d.life.Overlay(d.word, d.wordX, o.Y)
				d.stale = 0
				d.emit(Event{Kind: EventOverlay, Gen: d.gen, Pop: d.life.Population(), Stage: dis.Fired(), Y: o.Y})
			} else if dis.Done(d.gen) {
				d.stale = 0
				d.enter(Cruising)
			}
		}

		if d.phase == Cruising && (d.stale >= d.cfg.StaleGens || pop == 0) {
			reason := ReasonStale
			if pop == 0 {
				reason = ReasonExtinct
			}
			d.life.Randomize(d.cfg.Density, d.rng)
			d.stale = 0
			d.emit(Event{Kind: EventReseed, Gen: d.gen, Prev: pop, Pop: d.life.Population(), Reason: reason})
		}

		// The counter advances by exactly one per tick, so no stride
		// boundary is skipped.
		if d.gen%d.cfg.CircadianStride == 0 {
			before := d.walk.Position()
			pos := d.walk.Step(d.rng)
			d.emit(Event{Kind: EventTempo, Gen: d.gen, Position: pos, Delay: d.walk.Delay(), BPM: d.walk.BPM(), Moved: pos != before})
		}

		if err := d.clock.Sleep(ctx, d.walk.Delay()); err != nil {
			return err
		}
	}
}
