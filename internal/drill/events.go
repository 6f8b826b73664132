package drill

// EventKind identifies an engine transition.
type EventKind string

const (
	EventCardShown     EventKind = "card-shown"
	EventHelpRequested EventKind = "help-requested"
	EventGotIt         EventKind = "got-it"
	EventDeckComplete  EventKind = "deck-complete"
)

// Event describes a single transition. Fields not relevant to the kind are
// left zero.
type Event struct {
	Kind EventKind

	// Unit is the active unit id.
	Unit int

	// Word is the card the event concerns (card-shown, help-requested, got-it).
	Word string

	// Position is the 1-based card position; Total is the deck length.
	Position int
	Total    int

	// Helped is set on got-it when help was requested for the card.
	Helped bool

	// Review is true when the run's deck came from a help list.
	Review bool

	// Summary is set on deck-complete.
	Summary *Summary
}

// Listener receives engine events synchronously, in subscription order.
// Listeners must not call back into the engine.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) { f(ev) }
