// Package app wires the command-line configuration to a display device and
// the show director.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"lifeshow/internal/core"
	"lifeshow/internal/display"
	"lifeshow/internal/patterns"
	"lifeshow/internal/show"
	"lifeshow/internal/text"
	pcore "lifeshow/pkg/core"
	"lifeshow/pkg/sims/life"
)

// mainLoop is implemented by devices that must own the calling goroutine,
// such as the preview window.
type mainLoop interface {
	Run() error
}

// Run plays the show described by cfg until ctx is done, the configured
// duration elapses or the device asks to quit. Narration goes to out, or to
// the log file while the terminal device owns the screen.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.Duration > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, cfg.Duration)
		defer stop()
	}

	logw := out
	if cfg.Device == "terminal" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logw = f
	}
	logger := log.New(logw, "", log.LstdFlags)

	scfg := cfg.Show()
	dev, err := openDevice(cfg, scfg.Size, cancel)
	if err != nil {
		return err
	}

	seed := cfg.RandomSeed(time.Now())
	logger.Printf("lifeshow on %s device, seed %d", cfg.Device, seed)

	rng := pcore.NewRNG(seed)
	director, err := show.New(scfg, dev, text.New(cfg.TextScale), core.SystemClock{}, rng)
	if err != nil {
		dev.Close()
		return err
	}
	var status func(string)
	if w, ok := dev.(*display.Window); ok {
		status = w.SetStatus
	}
	narrator := NewNarrator(logger, status)
	narrator.Parameters(scfg.Parameters())
	director.SetObserver(narrator)

	play := func() error {
		start, err := startingGrid(cfg, scfg.Density, rng)
		if err != nil {
			return err
		}
		if start == nil {
			return director.Run(ctx)
		}
		if cfg.Pattern != "" {
			logger.Printf("cruising from pattern %s", cfg.Pattern)
		}
		return director.Cruise(ctx, start)
	}

	if loop, ok := dev.(mainLoop); ok {
		done := make(chan error, 1)
		go func() {
			done <- play()
			dev.Close()
		}()
		werr := loop.Run()
		cancel()
		err = errors.Join(<-done, werr)
	} else {
		err = play()
	}

	// The display is always left blank.
	if cerr := dev.Clear(); cerr != nil {
		logger.Printf("clear display: %v", cerr)
	}
	if cerr := dev.Close(); cerr != nil {
		logger.Printf("close display: %v", cerr)
	}
	logger.Print(narrator.Summary())
	if logw != out {
		fmt.Fprintln(out, narrator.Summary())
	}
	return err
}

func openDevice(cfg *Config, size pcore.Size, cancel context.CancelFunc) (display.Device, error) {
	switch cfg.Device {
	case "terminal":
		return display.NewTerminal(size, cancel)
	case "window":
		return display.NewWindow(size, cfg.Scale, "lifeshow", cancel)
	case "memory":
		return display.NewMemory(size), nil
	}
	return nil, fmt.Errorf("unknown device %q", cfg.Device)
}

// startingGrid returns how Cruise should seed the grid, or nil when the full
// show runs. Random grids draw from rng, the director's own generator.
func startingGrid(cfg *Config, density float64, rng *pcore.RNG) (func(*life.Life), error) {
	switch {
	case cfg.Pattern != "":
		p, err := patterns.Lookup(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		return func(l *life.Life) { patterns.PlaceCentered(l.Grid(), p) }, nil
	case cfg.SkipIntro:
		return func(l *life.Life) { l.Randomize(density, rng) }, nil
	}
	return nil, nil
}
