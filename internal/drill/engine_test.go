package drill

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordflash/internal/wordbank"
)

// recorder collects events for assertions.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func (r *recorder) last() Event {
	return r.events[len(r.events)-1]
}

func testEngine(t *testing.T, opts ...Option) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 2))), WithListener(rec)}, opts...)
	return New(wordbank.Default(), opts...), rec
}

func sorted(words []string) []string {
	out := slices.Clone(words)
	slices.Sort(out)
	return out
}

// finish resolves every remaining card, requesting help on the cards whose
// words are in help.
func finish(e *Engine, help map[string]bool) {
	for {
		w, ok := e.Current()
		if !ok {
			return
		}
		if help[w] {
			e.RecordHelp()
		}
		e.RecordGotIt()
	}
}

func TestStartUnit_DeckIsPermutation(t *testing.T) {
	bank := wordbank.Default()
	e, _ := testEngine(t)

	for _, id := range bank.IDs() {
		require.NoError(t, e.StartUnit(id, nil))
		assert.Equal(t, sorted(bank.Words(id)), sorted(e.Deck()), "unit %d", id)
		assert.Equal(t, len(bank.Words(id)), e.Len())
	}
}

func TestStartUnit_ResetsState(t *testing.T) {
	e, _ := testEngine(t)
	require.NoError(t, e.StartUnit(1, nil))
	e.RecordHelp()
	e.RecordGotIt()
	e.RecordGotIt()

	require.NoError(t, e.StartUnit(2, nil))
	assert.Equal(t, 2, e.Unit())
	assert.Equal(t, 0, e.Cursor())
	assert.Equal(t, 0, e.CorrectCount())
	assert.Equal(t, 0, e.HelpCount())
	assert.Empty(t, e.HelpList())
	assert.False(t, e.HelpRequested())
	assert.Equal(t, PhaseInProgress, e.Phase())
}

func TestStartUnit_EmitsFirstCard(t *testing.T) {
	e, rec := testEngine(t)
	require.NoError(t, e.StartUnit(3, nil))

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	first, _ := e.Current()
	assert.Equal(t, EventCardShown, ev.Kind)
	assert.Equal(t, first, ev.Word)
	assert.Equal(t, 1, ev.Position)
	assert.Equal(t, 15, ev.Total)
	assert.Equal(t, "1 / 15", e.Position())
}

func TestStartUnit_InvalidUnit(t *testing.T) {
	e, rec := testEngine(t)
	require.NoError(t, e.StartUnit(1, nil))
	before := e.Deck()

	err := e.StartUnit(99, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnit))

	// State untouched.
	assert.Equal(t, 1, e.Unit())
	assert.Equal(t, before, e.Deck())
	assert.Len(t, rec.events, 1)
}

func TestStartUnit_DoesNotAliasSource(t *testing.T) {
	e, _ := testEngine(t)
	review := []string{"a", "b", "c"}
	require.NoError(t, e.StartUnit(1, review))
	assert.Equal(t, []string{"a", "b", "c"}, review)
}

func TestShuffle_Uniform(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	const trials = 20000
	n := len(words)
	counts := make(map[string][]int, n)
	for _, w := range words {
		counts[w] = make([]int, n)
	}

	rng := rand.New(rand.NewPCG(7, 11))
	for range trials {
		deck := slices.Clone(words)
		shuffle(rng, deck)
		for pos, w := range deck {
			counts[w][pos]++
		}
	}

	// Chi-square over the n x n position table, (n-1)^2 = 16 degrees of
	// freedom. 39.25 is the p = 0.001 critical value.
	expected := float64(trials) / float64(n)
	var chi2 float64
	for _, w := range words {
		for pos := range n {
			d := float64(counts[w][pos]) - expected
			chi2 += d * d / expected
		}
	}
	assert.Less(t, chi2, 39.25, "position distribution not uniform: %v", counts)
}

func TestRecordGotIt_AdvancesToCompletion(t *testing.T) {
	e, rec := testEngine(t)
	require.NoError(t, e.StartUnit(1, nil))
	n := e.Len()

	for i := range n {
		assert.Equal(t, i, e.Cursor())
		assert.True(t, e.RecordGotIt())
	}

	assert.Equal(t, n, e.Cursor())
	_, ok := e.Current()
	assert.False(t, ok, "Current should signal completion past the end")
	assert.Equal(t, EventDeckComplete, rec.last().Kind)

	// Past the end is a no-op.
	assert.False(t, e.RecordGotIt())
	assert.False(t, e.RecordHelp())
	assert.Equal(t, n, e.Cursor())
}

func TestRecordGotIt_EventSequence(t *testing.T) {
	e, rec := testEngine(t)
	require.NoError(t, e.StartUnit(1, []string{"x", "y"}))
	e.RecordGotIt()
	e.RecordHelp()
	e.RecordGotIt()

	assert.Equal(t, []EventKind{
		EventCardShown,
		EventGotIt,
		EventCardShown,
		EventHelpRequested,
		EventGotIt,
		EventDeckComplete,
	}, rec.kinds())

	second := rec.events[2]
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, 2, second.Total)
	assert.True(t, rec.events[4].Helped)
	assert.False(t, rec.events[1].Helped)
}

func TestRecordHelp_Idempotent(t *testing.T) {
	e, rec := testEngine(t)
	require.NoError(t, e.StartUnit(1, nil))
	word, _ := e.Current()

	assert.True(t, e.RecordHelp())
	assert.False(t, e.RecordHelp())
	assert.False(t, e.RecordHelp())

	assert.Equal(t, 1, e.HelpCount())
	assert.Equal(t, []string{word}, e.HelpList())
	assert.Equal(t, 0, e.Cursor(), "help must not advance")

	helpEvents := 0
	for _, ev := range rec.events {
		if ev.Kind == EventHelpRequested {
			helpEvents++
			assert.Equal(t, word, ev.Word)
		}
	}
	assert.Equal(t, 1, helpEvents)

	e.RecordGotIt()
	assert.Equal(t, 0, e.CorrectCount(), "helped card is not correct")
	assert.False(t, e.HelpRequested())
}

func TestCompletion_CorrectPlusHelpedEqualsDeck(t *testing.T) {
	e, rec := testEngine(t)
	require.NoError(t, e.StartUnit(2, nil))
	deck := e.Deck()
	help := map[string]bool{deck[1]: true, deck[4]: true, deck[9]: true}

	finish(e, help)

	s := rec.last().Summary
	require.NotNil(t, s)
	assert.Equal(t, e.Len(), s.Correct+len(s.HelpList))
	assert.Equal(t, e.Len(), s.Correct+s.HelpCount)
	assert.Equal(t, 3, s.Missed())
}

func TestEvaluate_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		helped  int
		passed  bool
		phase   Phase
		correct int
	}{
		{"10 of 15 passes", 5, true, PhasePassed, 10},
		{"9 of 15 fails", 6, false, PhaseFailed, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := testEngine(t)
			require.NoError(t, e.StartUnit(3, nil))
			require.Equal(t, 15, e.Len())

			deck := e.Deck()
			help := make(map[string]bool)
			for _, w := range deck[:tt.helped] {
				help[w] = true
			}
			finish(e, help)

			assert.Equal(t, tt.correct, e.CorrectCount())
			res := e.Evaluate()
			assert.Equal(t, tt.passed, res.Passed)
			assert.False(t, res.Perfect)
			assert.Equal(t, tt.phase, e.Phase())
			assert.Equal(t, tt.passed, rec.last().Summary.Passed)
		})
	}
}

func TestEvaluate_PerfectRun(t *testing.T) {
	e, rec := testEngine(t)
	require.NoError(t, e.StartUnit(1, nil))
	require.Equal(t, 14, e.Len())

	finish(e, nil)

	res := e.Evaluate()
	assert.True(t, res.Passed)
	assert.True(t, res.Perfect)
	assert.Empty(t, e.HelpList())
	assert.Equal(t, PhasePassed, e.Phase())

	s := rec.last().Summary
	assert.Equal(t, 14, s.Correct)
	assert.False(t, s.CanReview())
}

func TestReview_RoundTrip(t *testing.T) {
	e, _ := testEngine(t)
	require.NoError(t, e.StartUnit(3, nil))
	deck := e.Deck()
	help := map[string]bool{deck[0]: true, deck[3]: true, deck[7]: true, deck[12]: true}

	finish(e, help)
	missed := e.HelpList()
	require.Len(t, missed, 4)

	require.NoError(t, e.StartUnit(3, missed))
	assert.Equal(t, sorted(missed), sorted(e.Deck()))
	assert.Equal(t, 3, e.Unit())
	assert.True(t, e.IsReview())
	assert.Empty(t, e.HelpList(), "help list resets for the review run")
}

func TestStartReview_UsesHelpList(t *testing.T) {
	e, _ := testEngine(t)
	require.NoError(t, e.StartUnit(4, nil))
	deck := e.Deck()
	finish(e, map[string]bool{deck[2]: true, deck[5]: true})

	require.NoError(t, e.StartReview())
	assert.Equal(t, sorted([]string{deck[2], deck[5]}), sorted(e.Deck()))
}

func TestReview_EmptyFallsBackToUnit(t *testing.T) {
	bank := wordbank.Default()
	e, _ := testEngine(t)
	require.NoError(t, e.StartUnit(1, nil))
	finish(e, nil)
	require.Empty(t, e.HelpList())

	require.NoError(t, e.StartUnit(1, e.HelpList()))
	assert.False(t, e.IsReview())
	assert.Equal(t, sorted(bank.Words(1)), sorted(e.Deck()))
	assert.GreaterOrEqual(t, e.Len(), 12)

	require.NoError(t, e.StartUnit(1, []string{}))
	assert.Equal(t, 14, e.Len())
}

func TestCurrent_BeforeStart(t *testing.T) {
	e, _ := testEngine(t)
	_, ok := e.Current()
	assert.False(t, ok)
	assert.Equal(t, PhaseIdle, e.Phase())
	assert.False(t, e.RecordGotIt())
}

func TestSubscribe_OrderPreserved(t *testing.T) {
	e := New(wordbank.Default(), WithRand(rand.New(rand.NewPCG(3, 4))))
	var order []string
	e.Subscribe(ListenerFunc(func(Event) { order = append(order, "first") }))
	e.Subscribe(ListenerFunc(func(Event) { order = append(order, "second") }))

	require.NoError(t, e.StartUnit(1, nil))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "passed", PhasePassed.String())
	assert.True(t, PhaseFailed.Done())
	assert.False(t, PhaseInProgress.Done())
}
