// Package drill implements the flashcard session state machine: deck
// building, per-card help and got-it responses, and pass/fail evaluation.
package drill

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// WordSource supplies the ordered word list for a unit. It returns an empty
// slice for unknown units. *wordbank.Bank satisfies it.
type WordSource interface {
	Words(unit int) []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used to shuffle decks.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithListener subscribes l to the engine's events.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, l) }
}

// Engine owns the state of one drill run. It is not safe for concurrent use;
// all methods run to completion on the calling goroutine.
type Engine struct {
	words     WordSource
	rng       *rand.Rand
	listeners []Listener

	unit       int
	deck       []string
	cursor     int
	correct    int
	helpCount  int
	helpList   []string
	helpOnCard bool
	review     bool
	phase      Phase
}

// New creates an idle engine drawing unit decks from words.
func New(words WordSource, opts ...Option) *Engine {
	e := &Engine{words: words}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

// Subscribe adds a listener. Listeners added mid-run see subsequent events only.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// StartUnit begins a new run for unit. A non-empty reviewWords list replaces
// the unit's deck; a nil or empty list falls back to the unit's full word set.
// The unit id must exist even when reviewing, since it labels the run.
func (e *Engine) StartUnit(unit int, reviewWords []string) error {
	source := e.words.Words(unit)
	if len(source) == 0 {
		return invalidUnit(unit)
	}

	review := len(reviewWords) > 0
	if review {
		source = reviewWords
	}

	deck := slices.Clone(source)
	shuffle(e.rng, deck)

	e.unit = unit
	e.deck = deck
	e.cursor = 0
	e.correct = 0
	e.helpCount = 0
	e.helpList = nil
	e.helpOnCard = false
	e.review = review
	e.phase = PhaseInProgress

	e.emitCardShown()
	return nil
}

// StartReview restarts the current unit with this run's help list as the deck.
func (e *Engine) StartReview() error {
	return e.StartUnit(e.unit, e.HelpList())
}

// Current returns the card under the cursor. ok is false once the deck is
// exhausted or before any run has started.
func (e *Engine) Current() (word string, ok bool) {
	if e.cursor >= len(e.deck) {
		return "", false
	}
	return e.deck[e.cursor], true
}

// RecordHelp marks the current card as needing help. Only the first call per
// card counts; it returns true in that case and false for repeats or when no
// card is showing.
func (e *Engine) RecordHelp() bool {
	word, ok := e.Current()
	if !ok || e.helpOnCard {
		return false
	}

	e.helpCount++
	e.helpOnCard = true
	e.helpList = append(e.helpList, word)

	e.emit(Event{
		Kind:     EventHelpRequested,
		Unit:     e.unit,
		Word:     word,
		Position: e.cursor + 1,
		Total:    len(e.deck),
		Review:   e.review,
	})
	return true
}

// RecordGotIt resolves the current card and advances the cursor. The card
// counts as correct only if no help was requested for it. Returns false when
// there is no card to resolve.
func (e *Engine) RecordGotIt() bool {
	word, ok := e.Current()
	if !ok {
		return false
	}

	helped := e.helpOnCard
	if !helped {
		e.correct++
	}
	e.cursor++
	e.helpOnCard = false

	e.emit(Event{
		Kind:     EventGotIt,
		Unit:     e.unit,
		Word:     word,
		Position: e.cursor,
		Total:    len(e.deck),
		Helped:   helped,
		Review:   e.review,
	})

	if e.cursor < len(e.deck) {
		e.emitCardShown()
		return true
	}

	res := e.Evaluate()
	if res.Passed {
		e.phase = PhasePassed
	} else {
		e.phase = PhaseFailed
	}
	e.emit(Event{
		Kind:     EventDeckComplete,
		Unit:     e.unit,
		Position: e.cursor,
		Total:    len(e.deck),
		Review:   e.review,
		Summary:  e.Summary(),
	})
	return true
}

// Evaluate judges the run: passed when at least two thirds of the deck was
// answered without help, perfect when no help was requested at all. A
// perfect run has nothing to review, so its help list is cleared.
func (e *Engine) Evaluate() Result {
	if e.helpCount == 0 {
		e.helpList = nil
	}
	return Result{
		Passed:  passThreshold(e.correct, len(e.deck)),
		Perfect: e.helpCount == 0,
	}
}

// Summary returns the run's counters and outcome.
func (e *Engine) Summary() *Summary {
	return &Summary{
		Unit:      e.unit,
		DeckSize:  len(e.deck),
		Correct:   e.correct,
		HelpCount: e.helpCount,
		HelpList:  e.HelpList(),
		Review:    e.review,
		Result:    e.Evaluate(),
	}
}

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Unit returns the active unit id (0 before the first run).
func (e *Engine) Unit() int { return e.unit }

// IsReview reports whether the current deck came from a help list.
func (e *Engine) IsReview() bool { return e.review }

// Deck returns a copy of the shuffled deck.
func (e *Engine) Deck() []string { return slices.Clone(e.deck) }

// Len returns the deck length.
func (e *Engine) Len() int { return len(e.deck) }

// Cursor returns the 0-based index of the current card.
func (e *Engine) Cursor() int { return e.cursor }

// CorrectCount returns the number of cards resolved without help.
func (e *Engine) CorrectCount() int { return e.correct }

// HelpCount returns the number of cards that received help.
func (e *Engine) HelpCount() int { return e.helpCount }

// HelpRequested reports whether help was requested on the current card.
func (e *Engine) HelpRequested() bool { return e.helpOnCard }

// HelpList returns a copy of the words that received help, in request order.
func (e *Engine) HelpList() []string { return slices.Clone(e.helpList) }

// Position returns the "k / N" label for the current card.
func (e *Engine) Position() string {
	return fmt.Sprintf("%d / %d", e.cursor+1, len(e.deck))
}

func (e *Engine) emitCardShown() {
	e.emit(Event{
		Kind:     EventCardShown,
		Unit:     e.unit,
		Word:     e.deck[e.cursor],
		Position: e.cursor + 1,
		Total:    len(e.deck),
		Review:   e.review,
	})
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l.OnEvent(ev)
	}
}
