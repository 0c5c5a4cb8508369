package show

import (
	"slices"
	"testing"
)

func TestDefaultScheduleRows(t *testing.T) {
	got := DefaultSchedule(64, 13, 4)
	want := []Overlay{
		{Gen: 4, Y: 1},
		{Gen: 8, Y: 50},
		{Gen: 12, Y: 13},
		{Gen: 16, Y: 37},
		{Gen: 20, Y: 25},
		{Gen: 24, Y: 1},
		{Gen: 28, Y: 50},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("schedule %v, expected %v", got, want)
	}
}

func TestDissolveFiresEachOverlayOnce(t *testing.T) {
	d := NewDissolve([]Overlay{{Gen: 4, Y: 1}, {Gen: 8, Y: 2}, {Gen: 12, Y: 3}}, 16)
	var fired []int
	for gen := 1; gen <= 20; gen++ {
		if o, ok := d.Due(gen); ok {
			if o.Gen != gen {
				t.Fatalf("overlay for gen %d fired at %d", o.Gen, gen)
			}
			fired = append(fired, gen)
		}
	}
	if !slices.Equal(fired, []int{4, 8, 12}) {
		t.Fatalf("overlays fired at %v", fired)
	}
	if d.Fired() != 3 || !d.Spent() {
		t.Fatalf("fired %d, spent %v", d.Fired(), d.Spent())
	}
}

func TestDissolveOneOverlayPerCall(t *testing.T) {
	d := NewDissolve([]Overlay{{Gen: 4, Y: 1}, {Gen: 8, Y: 2}}, 10)
	// A late caller catches up one entry at a time.
	if o, ok := d.Due(9); !ok || o.Y != 1 {
		t.Fatalf("first catch-up returned %v %v", o, ok)
	}
	if o, ok := d.Due(9); !ok || o.Y != 2 {
		t.Fatalf("second catch-up returned %v %v", o, ok)
	}
	if _, ok := d.Due(9); ok {
		t.Fatal("spent schedule fired again")
	}
}

func TestDissolveDone(t *testing.T) {
	d := NewDissolve([]Overlay{{Gen: 4, Y: 1}}, 8)
	if d.Done(10) {
		t.Fatal("done before the schedule was spent")
	}
	d.Due(4)
	if d.Done(7) {
		t.Fatal("done before the total generation count")
	}
	if !d.Done(8) {
		t.Fatal("not done at the total generation count")
	}
}
