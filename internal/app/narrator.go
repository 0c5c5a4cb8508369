package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"lifeshow/internal/core"
	"lifeshow/internal/show"
	"lifeshow/internal/ui"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// historyLimit bounds the population samples kept for the summary plot.
const historyLimit = 600

// Narrator logs show events and keeps the population history for the
// shutdown summary.
type Narrator struct {
	log    *log.Logger
	status func(string)

	state    ui.Status
	reseeds  int
	overlays int
	history  []float64
}

// NewNarrator writes to logger. status, when non-nil, receives a one-line
// summary after every event.
func NewNarrator(logger *log.Logger, status func(string)) *Narrator {
	return &Narrator{log: logger, status: status}
}

// Parameters logs the configuration snapshot.
func (n *Narrator) Parameters(snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			parts = append(parts, labelStyle.Render(p.Label+":")+" "+valueStyle.Render(p.Value))
		}
		n.log.Printf("%s %s", headerStyle.Render(g.Name), strings.Join(parts, "  "))
	}
}

// Observe implements show.Observer.
func (n *Narrator) Observe(e show.Event) {
	n.state.Phase = e.Phase.String()
	switch e.Kind {
	case show.EventPhase:
		n.log.Print(headerStyle.Render("=== " + phaseTitle(e.Phase) + " ==="))
	case show.EventLine:
		if e.Final {
			n.log.Printf("  Scrolling: %q (final line)", e.Text)
		} else {
			n.log.Printf("  Scrolling: %q", e.Text)
		}
	case show.EventSeed:
		n.log.Printf("  Seeded %d cells", e.Pop)
		n.record(e.Pop)
	case show.EventGeneration:
		n.state.Gen, n.state.Pop = e.Gen, e.Pop
		n.record(e.Pop)
		if e.Gen <= 30 || e.Gen%25 == 0 {
			n.log.Printf("  Gen %d: pop=%d", e.Gen, e.Pop)
		}
	case show.EventOverlay:
		n.overlays++
		n.log.Print(eventStyle.Render(fmt.Sprintf("  Overlay %d at y=%d, gen %d (pop=%d)", e.Stage, e.Y, e.Gen, e.Pop)))
	case show.EventReseed:
		n.reseeds++
		n.log.Print(eventStyle.Render(fmt.Sprintf("  Resetting at gen %d (%s, pop=%d -> %d)", e.Gen, e.Reason, e.Prev, e.Pop)))
	case show.EventTempo:
		n.state.BPM = e.BPM
		if e.Moved {
			n.log.Printf("  Circadian: step %d (%.3fs, ~%d BPM)", e.Position, e.Delay.Seconds(), e.BPM)
		}
	}
	if n.status != nil {
		n.status(n.state.String())
	}
}

func phaseTitle(p show.Phase) string {
	switch p {
	case show.Stargazing:
		return "Stargazing"
	case show.TickerScroll:
		return "Startup Ticker"
	case show.DawnTransition:
		return "Dawn"
	case show.Dissolving:
		return "Dissolving"
	case show.Cruising:
		return "Cruising"
	}
	return p.String()
}

func (n *Narrator) record(pop int) {
	if len(n.history) == historyLimit {
		copy(n.history, n.history[1:])
		n.history = n.history[:historyLimit-1]
	}
	n.history = append(n.history, float64(pop))
}

// Summary describes the run: generation count, overlays, reseeds and a plot
// of recent population.
func (n *Narrator) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stopped after %d generations (%d overlays, %d reseeds).", n.state.Gen, n.overlays, n.reseeds)
	if len(n.history) >= 2 {
		plot := asciigraph.Plot(n.history,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("Population"))
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(plot))
	}
	return b.String()
}
