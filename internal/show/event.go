package show

import "time"

// EventKind identifies what happened in the show.
type EventKind int

const (
	EventPhase EventKind = iota
	EventLine
	EventSeed
	EventGeneration
	EventOverlay
	EventReseed
	EventTempo
)

// Reseed reasons.
const (
	ReasonStale   = "stale"
	ReasonExtinct = "extinct"
)

// Event reports show progress to an Observer. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind  EventKind
	Phase Phase

	// EventLine
	Line  int
	Text  string
	Final bool

	// EventSeed, EventGeneration, EventOverlay, EventReseed
	Gen  int
	Pop  int
	Prev int // population before a reseed

	// EventOverlay
	Stage int
	Y     int

	// EventReseed
	Reason string

	// EventTempo
	Position int
	Delay    time.Duration
	BPM      int
	Moved    bool
}

// Observer receives show events on the director's goroutine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Observers fans an event out to several observers in order.
type Observers []Observer

// Observe forwards e to every observer.
func (os Observers) Observe(e Event) {
	for _, o := range os {
		if o != nil {
			o.Observe(e)
		}
	}
}
