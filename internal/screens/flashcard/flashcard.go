// Package flashcard is the card screen: it owns a drill.Engine for one unit
// and turns key presses into got-it and help responses.
package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordflash/internal/drill"
	"github.com/abhisek/wordflash/internal/router"
	"github.com/abhisek/wordflash/internal/screen"
	"github.com/abhisek/wordflash/internal/screens/summary"
	"github.com/abhisek/wordflash/internal/ui/layout"
	"github.com/abhisek/wordflash/internal/wordbank"
)

// Hinter looks up example sentences. *hints.Service satisfies it.
type Hinter interface {
	Cached(word string) (string, bool)
	Sentence(ctx context.Context, word string) (string, error)
}

// Deps are the collaborators shared by every card screen.
type Deps struct {
	Bank *wordbank.Bank

	// Listeners are subscribed to each engine before the screen itself,
	// e.g. the run journal and the sound/narration hooks.
	Listeners []drill.Listener

	// Hints is optional.
	Hints Hinter

	// AdvanceDelay is the pause between an answer and the next card.
	AdvanceDelay time.Duration

	Logger *slog.Logger

	// Rand seeds deck shuffles; nil uses a random seed.
	Rand *rand.Rand
}

type hintState int

const (
	hintNone hintState = iota
	hintLoading
	hintReady
	hintFailed
)

// FlashcardScreen implements screen.Screen for a drill run.
type FlashcardScreen struct {
	deps   Deps
	unit   int
	engine *drill.Engine
	keys   keyMap
	logger *slog.Logger

	// events queued by the engine during the current Update.
	queue []drill.Event

	word     string
	position int
	total    int
	review   bool
	helped   bool
	sentence string
	hint     hintState

	advancing bool
	answered  bool // last answer was got-it without help
	next      *drill.Event
	errMsg    string
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)
var _ screen.StatusProvider = (*FlashcardScreen)(nil)

// New creates a card screen for unit. The run starts in Init.
func New(deps Deps, unit int) *FlashcardScreen {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var opts []drill.Option
	if deps.Rand != nil {
		opts = append(opts, drill.WithRand(deps.Rand))
	}
	for _, l := range deps.Listeners {
		opts = append(opts, drill.WithListener(l))
	}

	s := &FlashcardScreen{
		deps:   deps,
		unit:   unit,
		keys:   newKeyMap(),
		logger: logger,
	}
	s.engine = drill.New(deps.Bank, opts...)
	s.engine.Subscribe(drill.ListenerFunc(func(ev drill.Event) {
		s.queue = append(s.queue, ev)
	}))
	return s
}

// Engine exposes the underlying state machine.
func (s *FlashcardScreen) Engine() *drill.Engine {
	return s.engine
}

func (s *FlashcardScreen) Init() tea.Cmd {
	if err := s.engine.StartUnit(s.unit, nil); err != nil {
		s.logger.Error("start unit", "unit", s.unit, "err", err)
		s.errMsg = err.Error()
		return nil
	}
	s.logger.Info("unit started", "unit", s.unit, "cards", s.engine.Len())
	return s.drain()
}

func (s *FlashcardScreen) Title() string {
	if s.review {
		return "Review"
	}
	return s.label()
}

func (s *FlashcardScreen) label() string {
	return s.deps.Bank.Label(s.unit)
}

// Status returns the "Unit 3 · 4 / 15" header text.
func (s *FlashcardScreen) Status() string {
	if s.total == 0 {
		return ""
	}
	return fmt.Sprintf("%s · %d / %d", s.label(), s.position, s.total)
}

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	return s.keys.hints()
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return s.handleAdvance()

	case hintReadyMsg:
		return s.handleHint(msg)

	case summary.ReviewMsg:
		return s.startReview()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *FlashcardScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	// Keys are ignored while the answered card is still on screen.
	if s.advancing {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.GotIt):
		if s.engine.RecordGotIt() {
			return s, s.drain()
		}
	case key.Matches(msg, s.keys.Help):
		if s.engine.RecordHelp() {
			return s, s.drain()
		}
	}
	return s, nil
}

// drain applies queued engine events to the view state.
func (s *FlashcardScreen) drain() tea.Cmd {
	var cmds []tea.Cmd
	for len(s.queue) > 0 {
		ev := s.queue[0]
		s.queue = s.queue[1:]

		switch ev.Kind {
		case drill.EventCardShown:
			if s.advancing {
				s.next = &ev
				continue
			}
			s.show(ev)

		case drill.EventHelpRequested:
			s.helped = true
			cmds = append(cmds, s.lookupHint(ev.Word))

		case drill.EventGotIt:
			s.advancing = true
			s.answered = !ev.Helped
			cmds = append(cmds, s.advanceAfterDelay())

		case drill.EventDeckComplete:
			s.next = &ev
		}
	}
	return tea.Batch(cmds...)
}

func (s *FlashcardScreen) show(ev drill.Event) {
	s.word = ev.Word
	s.position = ev.Position
	s.total = ev.Total
	s.review = ev.Review
	s.helped = false
	s.sentence = ""
	s.hint = hintNone
}

func (s *FlashcardScreen) advanceAfterDelay() tea.Cmd {
	if s.deps.AdvanceDelay <= 0 {
		return func() tea.Msg { return advanceMsg{} }
	}
	return tea.Tick(s.deps.AdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{}
	})
}

func (s *FlashcardScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	if !s.advancing {
		return s, nil
	}
	s.advancing = false
	next := s.next
	s.next = nil
	if next == nil {
		return s, nil
	}

	switch next.Kind {
	case drill.EventCardShown:
		s.show(*next)
	case drill.EventDeckComplete:
		sum := next.Summary
		s.logger.Info("unit finished",
			"unit", sum.Unit, "review", sum.Review, "correct", sum.Correct,
			"help", sum.HelpCount, "passed", sum.Passed)
		sc := summary.New(sum, s.label())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
	}
	return s, nil
}

func (s *FlashcardScreen) startReview() (screen.Screen, tea.Cmd) {
	if err := s.engine.StartReview(); err != nil {
		s.logger.Error("start review", "unit", s.unit, "err", err)
		s.errMsg = err.Error()
		return s, nil
	}
	s.logger.Info("review started", "unit", s.unit, "cards", s.engine.Len())
	return s, s.drain()
}

func (s *FlashcardScreen) lookupHint(word string) tea.Cmd {
	if s.deps.Hints == nil {
		return nil
	}
	if sentence, ok := s.deps.Hints.Cached(word); ok {
		s.sentence = sentence
		s.hint = hintReady
		return nil
	}
	s.hint = hintLoading
	hinter := s.deps.Hints
	return func() tea.Msg {
		sentence, err := hinter.Sentence(context.Background(), word)
		return hintReadyMsg{Word: word, Sentence: sentence, Err: err}
	}
}

func (s *FlashcardScreen) handleHint(msg hintReadyMsg) (screen.Screen, tea.Cmd) {
	// The learner may have moved on.
	if msg.Word != s.word || !s.helped {
		return s, nil
	}
	if msg.Err != nil {
		s.logger.Debug("hint unavailable", "word", msg.Word, "err", msg.Err)
		s.hint = hintFailed
		return s, nil
	}
	s.sentence = msg.Sentence
	s.hint = hintReady
	return s, nil
}
