package show

// Phase is the stage of the show. Phases only advance.
type Phase int

const (
	Stargazing Phase = iota
	TickerScroll
	DawnTransition
	Dissolving
	Cruising
)

func (p Phase) String() string {
	switch p {
	case Stargazing:
		return "stargazing"
	case TickerScroll:
		return "ticker"
	case DawnTransition:
		return "dawn"
	case Dissolving:
		return "dissolving"
	case Cruising:
		return "cruising"
	}
	return "unknown"
}
