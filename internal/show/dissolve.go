package show

// Overlay stamps the seed word again at row Y once the generation counter
// reaches Gen.
type Overlay struct {
	Gen int
	Y   int
}

// Dissolve walks an ordered overlay schedule. Each entry fires exactly once,
// the first time the generation counter reaches or passes its threshold, and
// at most one entry fires per call to Due.
type Dissolve struct {
	schedule []Overlay
	next     int
	total    int
}

// NewDissolve returns a cursor over schedule. The dissolve is complete once
// the schedule is spent and the generation reaches total.
func NewDissolve(schedule []Overlay, total int) *Dissolve {
	return &Dissolve{schedule: schedule, total: total}
}

// Due returns the next overlay if gen has reached its threshold, advancing
// the cursor past it.
func (d *Dissolve) Due(gen int) (Overlay, bool) {
	if d.next >= len(d.schedule) || gen < d.schedule[d.next].Gen {
		return Overlay{}, false
	}
	o := d.schedule[d.next]
	d.next++
	return o, true
}

// Fired returns how many overlays have been applied.
func (d *Dissolve) Fired() int { return d.next }

// Spent reports whether every overlay has fired.
func (d *Dissolve) Spent() bool { return d.next >= len(d.schedule) }

// Done reports whether the dissolve is over at gen.
func (d *Dissolve) Done(gen int) bool { return d.Spent() && gen >= d.total }

// DefaultSchedule spreads overlays of a word cellHeight rows tall over a grid
// of the given height: top, bottom, the two bridges between the thirds, the
// middle, then top and bottom again, one every phaseGens generations.
func DefaultSchedule(rows, cellHeight, phaseGens int) []Overlay {
	top := 1
	mid := (rows - cellHeight) / 2
	bot := rows - cellHeight - 1
	upper := (top + mid) / 2
	lower := (mid + bot) / 2
	ys := []int{top, bot, upper, lower, mid, top, bot}
	out := make([]Overlay, len(ys))
	for i, y := range ys {
		out[i] = Overlay{Gen: phaseGens * (i + 1), Y: y}
	}
	return out
}
