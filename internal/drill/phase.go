package drill

// Phase is the engine's position in the run lifecycle.
type Phase int

const (
	PhaseIdle       Phase = iota // No run started yet
	PhaseInProgress              // Cards remain in the deck
	PhasePassed                  // Deck finished at or above the pass threshold
	PhaseFailed                  // Deck finished below the pass threshold
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in-progress"
	case PhasePassed:
		return "passed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Done reports whether the phase is terminal.
func (p Phase) Done() bool {
	return p == PhasePassed || p == PhaseFailed
}
