// Package ui holds the preview window's status strip.
package ui

import (
	"fmt"
	"strings"
)

// Height is the pixel height of the status strip.
const Height = 18

// Status is what the strip shows about the running show.
type Status struct {
	Phase string
	Gen   int
	Pop   int
	BPM   int
}

// String formats the status as one short line.
func (s Status) String() string {
	var b strings.Builder
	b.WriteString(s.Phase)
	if s.Gen > 0 {
		fmt.Fprintf(&b, "  gen %d  pop %d", s.Gen, s.Pop)
	}
	if s.BPM > 0 {
		fmt.Fprintf(&b, "  %d bpm", s.BPM)
	}
	return b.String()
}
