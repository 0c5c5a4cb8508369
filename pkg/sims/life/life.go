package life

import (
	"lifeshow/pkg/core"
)

// Life implements Conway's Game of Life with toroidal wrapping. The two
// grids form an arena: one is current and readable, the other is scratch
// space written during Step. Step flips which one is current.
type Life struct {
	grids [2]*core.ByteGrid
	cur   int
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{grids: [2]*core.ByteGrid{core.NewByteGrid(w, h), core.NewByteGrid(w, h)}}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grids[0].Size() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.ByteGrid { return l.grids[l.cur] }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grids[l.cur].Cells() }

// Population returns the number of live cells in the current generation.
func (l *Life) Population() int { return Population(l.grids[l.cur]) }

// Clear kills every cell of the current generation.
func (l *Life) Clear() { l.grids[l.cur].Clear() }

// Randomize reseeds the current generation at the given density.
func (l *Life) Randomize(density float64, rng *core.RNG) {
	Randomize(l.grids[l.cur], density, rng)
}

// SeedFrom clears the current generation and stamps bm at (x, y).
func (l *Life) SeedFrom(bm core.Bitmap, x, y int) {
	l.grids[l.cur].Clear()
	Seed(l.grids[l.cur], bm, x, y)
}

// Overlay forces the lit cells of bm alive at (x, y) without clearing.
func (l *Life) Overlay(bm core.Bitmap, x, y int) {
	Overlay(l.grids[l.cur], bm, x, y)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	scratch := 1 - l.cur
	Step(l.grids[l.cur], l.grids[scratch])
	l.cur = scratch
}

// Step computes the generation after cur into next. cur is only read and
// next is fully overwritten; both grids must have the same dimensions.
func Step(cur, next *core.ByteGrid) {
	w, h := cur.W, cur.H
	src := cur.Cells()
	dst := next.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(src[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := src[idx] == 1
			dst[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				dst[idx] = 1
			}
		}
	}
}

// Population counts live cells in g.
func Population(g *core.ByteGrid) int {
	n := 0
	for _, c := range g.Cells() {
		n += int(c)
	}
	return n
}

// Randomize sets every cell of g live independently with probability density.
func Randomize(g *core.ByteGrid, density float64, rng *core.RNG) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	core.FillBinary(rng.Source(), g.Cells(), density)
}

// Seed copies the lit cells of bm into g with the bitmap origin at (x, y).
// Existing cells are not cleared and coordinates outside g are skipped.
func Seed(g *core.ByteGrid, bm core.Bitmap, x, y int) {
	stamp(g, bm, x, y)
}

// Overlay forces the lit cells of bm alive in g with the bitmap origin at
// (x, y). Unlit bitmap cells leave g untouched.
func Overlay(g *core.ByteGrid, bm core.Bitmap, x, y int) {
	stamp(g, bm, x, y)
}

func stamp(g *core.ByteGrid, bm core.Bitmap, x0, y0 int) {
	cells := g.Cells()
	for by := 0; by < bm.H; by++ {
		gy := y0 + by
		if gy < 0 || gy >= g.H {
			continue
		}
		for bx := 0; bx < bm.W; bx++ {
			gx := x0 + bx
			if gx < 0 || gx >= g.W {
				continue
			}
			if bm.At(bx, by) {
				cells[g.Index(gx, gy)] = 1
			}
		}
	}
}
