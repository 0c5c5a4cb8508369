// Package patterns holds a catalog of classic Life patterns that can be
// stamped onto a grid.
package patterns

import (
	"fmt"
	"sort"
	"strings"

	"lifeshow/pkg/core"
)

// Cell is a (row, col) offset relative to the pattern origin.
type Cell struct{ Row, Col int }

// Pattern is a named set of live cells.
type Pattern struct {
	Name     string
	Category string
	Cells    []Cell
}

// Bounds returns the number of rows and columns the pattern spans.
func (p Pattern) Bounds() (rows, cols int) {
	for _, c := range p.Cells {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
		if c.Col+1 > cols {
			cols = c.Col + 1
		}
	}
	return rows, cols
}

const (
	CategoryStillLife  = "Still Lifes"
	CategoryOscillator = "Oscillators"
	CategorySpaceship  = "Spaceships"
	CategoryGun        = "Guns"
	CategoryMethuselah = "Methuselahs"
)

var (
	Block   = Pattern{"block", CategoryStillLife, cells(0, 0, 0, 1, 1, 0, 1, 1)}
	Beehive = Pattern{"beehive", CategoryStillLife, cells(0, 1, 0, 2, 1, 0, 1, 3, 2, 1, 2, 2)}
	Loaf    = Pattern{"loaf", CategoryStillLife, cells(0, 1, 0, 2, 1, 0, 1, 3, 2, 1, 2, 3, 3, 2)}
	Boat    = Pattern{"boat", CategoryStillLife, cells(0, 0, 0, 1, 1, 0, 1, 2, 2, 1)}
	Tub     = Pattern{"tub", CategoryStillLife, cells(0, 1, 1, 0, 1, 2, 2, 1)}

	Blinker = Pattern{"blinker", CategoryOscillator, cells(0, 0, 0, 1, 0, 2)}
	Toad    = Pattern{"toad", CategoryOscillator, cells(0, 1, 0, 2, 0, 3, 1, 0, 1, 1, 1, 2)}
	Beacon  = Pattern{"beacon", CategoryOscillator, cells(0, 0, 0, 1, 1, 0, 2, 3, 3, 2, 3, 3)}
	Pulsar  = Pattern{"pulsar", CategoryOscillator, cells(
		0, 2, 0, 3, 0, 4, 0, 8, 0, 9, 0, 10,
		2, 0, 2, 5, 2, 7, 2, 12,
		3, 0, 3, 5, 3, 7, 3, 12,
		4, 0, 4, 5, 4, 7, 4, 12,
		5, 2, 5, 3, 5, 4, 5, 8, 5, 9, 5, 10,
		7, 2, 7, 3, 7, 4, 7, 8, 7, 9, 7, 10,
		8, 0, 8, 5, 8, 7, 8, 12,
		9, 0, 9, 5, 9, 7, 9, 12,
		10, 0, 10, 5, 10, 7, 10, 12,
		12, 2, 12, 3, 12, 4, 12, 8, 12, 9, 12, 10,
	)}
	Pentadecathlon = Pattern{"pentadecathlon", CategoryOscillator, cells(
		0, 1, 1, 1, 2, 0, 2, 2, 3, 1, 4, 1,
		5, 1, 6, 1, 7, 0, 7, 2, 8, 1, 9, 1,
	)}

	Glider = Pattern{"glider", CategorySpaceship, cells(0, 1, 1, 2, 2, 0, 2, 1, 2, 2)}
	LWSS   = Pattern{"lwss", CategorySpaceship, cells(0, 1, 0, 4, 1, 0, 2, 0, 2, 4, 3, 0, 3, 1, 3, 2, 3, 3)}
	MWSS   = Pattern{"mwss", CategorySpaceship, cells(
		0, 2, 1, 0, 1, 4, 2, 5, 3, 0, 3, 5,
		4, 1, 4, 2, 4, 3, 4, 4, 4, 5,
	)}
	HWSS = Pattern{"hwss", CategorySpaceship, cells(
		0, 2, 0, 3, 1, 0, 1, 5, 2, 6, 3, 0, 3, 6,
		4, 1, 4, 2, 4, 3, 4, 4, 4, 5, 4, 6,
	)}

	GosperGliderGun = Pattern{"gosper_glider_gun", CategoryGun, cells(
		0, 24,
		1, 22, 1, 24,
		2, 12, 2, 13, 2, 20, 2, 21, 2, 34, 2, 35,
		3, 11, 3, 15, 3, 20, 3, 21, 3, 34, 3, 35,
		4, 0, 4, 1, 4, 10, 4, 16, 4, 20, 4, 21,
		5, 0, 5, 1, 5, 10, 5, 14, 5, 16, 5, 17, 5, 22, 5, 24,
		6, 10, 6, 16, 6, 24,
		7, 11, 7, 15,
		8, 12, 8, 13,
	)}

	RPentomino = Pattern{"r_pentomino", CategoryMethuselah, cells(0, 1, 0, 2, 1, 0, 1, 1, 2, 1)}
	Diehard    = Pattern{"diehard", CategoryMethuselah, cells(0, 6, 1, 0, 1, 1, 2, 1, 2, 5, 2, 6, 2, 7)}
	Acorn      = Pattern{"acorn", CategoryMethuselah, cells(0, 1, 1, 3, 2, 0, 2, 1, 2, 4, 2, 5, 2, 6)}
)

var catalog = map[string]Pattern{}

// Register adds a pattern to the catalog under its name.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	catalog[p.Name] = p
}

// Lookup finds a pattern by name.
func Lookup(name string) (Pattern, error) {
	p, ok := catalog[name]
	if !ok {
		return Pattern{}, fmt.Errorf("unknown pattern %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place stamps p onto g with its origin at (row, col), wrapping at the edges.
func Place(g *core.ByteGrid, p Pattern, row, col int) {
	for _, c := range p.Cells {
		g.Set(col+c.Col, row+c.Row, 1)
	}
}

// PlaceCentered stamps p onto g centred on the grid.
func PlaceCentered(g *core.ByteGrid, p Pattern) {
	rows, cols := p.Bounds()
	Place(g, p, (g.H-rows)/2, (g.W-cols)/2)
}

func cells(pairs ...int) []Cell {
	out := make([]Cell, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Cell{Row: pairs[i], Col: pairs[i+1]})
	}
	return out
}

func init() {
	for _, p := range []Pattern{
		Block, Beehive, Loaf, Boat, Tub,
		Blinker, Toad, Beacon, Pulsar, Pentadecathlon,
		Glider, LWSS, MWSS, HWSS,
		GosperGliderGun,
		RPentomino, Diehard, Acorn,
	} {
		Register(p)
	}
}
