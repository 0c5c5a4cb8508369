package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"lifeshow/internal/patterns"
	"lifeshow/internal/show"
)

// Devices lists the accepted -device values.
var Devices = []string{"terminal", "window", "memory"}

// Config represents the command-line parameters for the application.
type Config struct {
	Device    string
	Scale     int
	TextScale int
	Seed      int64
	Density   float64
	Stale     int
	Stars     int
	Tempo     float64
	Lines     string
	Pattern   string
	SkipIntro bool
	Duration  time.Duration
	LogFile   string
}

// NewConfig returns a Config populated with the installation defaults.
func NewConfig() *Config {
	def := show.DefaultConfig()
	return &Config{
		Device:    "terminal",
		Scale:     8,
		TextScale: 1,
		Density:   def.Density,
		Stale:     def.StaleGens,
		Stars:     def.StarCount,
		Tempo:     def.Tempo,
		Lines:     strings.Join(def.Lines, "|"),
		LogFile:   "lifeshow.log",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Device, "device", c.Device, "output device: "+strings.Join(Devices, ", "))
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixel scale multiplier")
	fs.IntVar(&c.TextScale, "text-scale", c.TextScale, "ticker font magnification")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one from the clock")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability when reseeding")
	fs.IntVar(&c.Stale, "stale", c.Stale, "unchanged generations before a reseed")
	fs.IntVar(&c.Stars, "stars", c.Stars, "number of twinkling stars")
	fs.Float64Var(&c.Tempo, "tempo", c.Tempo, "speed multiplier for every delay")
	fs.StringVar(&c.Lines, "lines", c.Lines, "ticker lines separated by |, the last word of the last line seeds the grid")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "skip the intro and cruise from a named pattern")
	fs.BoolVar(&c.SkipIntro, "skip-intro", c.SkipIntro, "skip the intro and cruise from a random grid")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "stop after this long, 0 runs until interrupted")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file used while the terminal device owns the screen")
}

// Validate checks the values that flag parsing cannot.
func (c *Config) Validate() error {
	known := false
	for _, d := range Devices {
		if c.Device == d {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown device %q", c.Device)
	}
	if c.Pattern != "" {
		if _, err := patterns.Lookup(c.Pattern); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Lines) == "" {
		return fmt.Errorf("at least one ticker line is required")
	}
	return nil
}

// Show derives the show configuration.
func (c *Config) Show() show.Config {
	cfg := show.DefaultConfig()
	cfg.Density = c.Density
	cfg.StaleGens = c.Stale
	cfg.StarCount = c.Stars
	cfg.Tempo = c.Tempo
	cfg.Lines = strings.Split(c.Lines, "|")
	return cfg
}

// RandomSeed reports the seed to use, drawing one from now when unset.
func (c *Config) RandomSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
