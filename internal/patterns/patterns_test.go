package patterns

import (
	"slices"
	"testing"

	"lifeshow/pkg/core"
	"lifeshow/pkg/sims/life"
)

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Fatal("expected an error for an unknown pattern")
	}
	p, err := Lookup("glider")
	if err != nil {
		t.Fatalf("lookup glider: %v", err)
	}
	if len(p.Cells) != 5 {
		t.Fatalf("glider has %d cells, expected 5", len(p.Cells))
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 18 {
		t.Fatalf("catalog has %d patterns, expected 18", len(names))
	}
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestStillLifesAreStable(t *testing.T) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		if p.Category != CategoryStillLife {
			continue
		}
		l := life.New(16, 16)
		PlaceCentered(l.Grid(), p)
		want := append([]uint8(nil), l.Cells()...)
		l.Step()
		if !slices.Equal(want, l.Cells()) {
			t.Fatalf("%s changed after one generation", name)
		}
	}
}

func TestOscillatorsReturnWithinPeriod(t *testing.T) {
	periods := map[string]int{"blinker": 2, "toad": 2, "beacon": 2, "pulsar": 3, "pentadecathlon": 15}
	for name, period := range periods {
		p, _ := Lookup(name)
		l := life.New(32, 32)
		PlaceCentered(l.Grid(), p)
		want := append([]uint8(nil), l.Cells()...)
		for i := 0; i < period; i++ {
			l.Step()
		}
		if !slices.Equal(want, l.Cells()) {
			t.Fatalf("%s did not return after %d generations", name, period)
		}
	}
}

func TestGliderTranslatesAfterFourGenerations(t *testing.T) {
	l := life.New(12, 12)
	Place(l.Grid(), Glider, 2, 2)
	for i := 0; i < 4; i++ {
		l.Step()
	}
	want := core.NewByteGrid(12, 12)
	Place(want, Glider, 3, 3)
	if !slices.Equal(want.Cells(), l.Cells()) {
		t.Fatal("glider did not move one cell diagonally")
	}
}

func TestPlaceWraps(t *testing.T) {
	g := core.NewByteGrid(4, 4)
	Place(g, Block, 3, 3)
	for _, xy := range [][2]int{{3, 3}, {0, 3}, {3, 0}, {0, 0}} {
		if g.At(xy[0], xy[1]) != 1 {
			t.Fatalf("cell (%d,%d) not set by wrapped placement", xy[0], xy[1])
		}
	}
}
