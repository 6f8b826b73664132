package app

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordflash/internal/router"
	"github.com/abhisek/wordflash/internal/screens/flashcard"
	"github.com/abhisek/wordflash/internal/screens/home"
	"github.com/abhisek/wordflash/internal/screens/summary"
	"github.com/abhisek/wordflash/internal/screens/welcome"
	"github.com/abhisek/wordflash/internal/wordbank"
)

func testOptions() Options {
	return Options{Home: home.Deps{Bank: wordbank.Default()}}
}

// deliver runs cmd and feeds the resulting messages back into the model.
func deliver(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = deliver(t, m, c)
		}
		return m
	}
	switch msg.(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		updated, _ := m.Update(msg)
		return updated.(AppModel)
	}
	return m
}

func TestStartsWithSplash(t *testing.T) {
	m := newAppModel(testOptions())
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("expected welcome screen, got %T", m.router.Active())
	}

	updated, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	m = deliver(t, updated.(AppModel), cmd)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home after keypress, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("splash should be replaced, depth = %d", m.router.Depth())
	}
}

func TestStartUnitOpensCard(t *testing.T) {
	opts := testOptions()
	opts.StartUnit = 4
	m := newAppModel(opts)
	m = deliver(t, m, m.Init())

	card, ok := m.router.Active().(*flashcard.FlashcardScreen)
	if !ok {
		t.Fatalf("expected flashcard screen, got %T", m.router.Active())
	}
	if card.Engine().Unit() != 4 {
		t.Errorf("unit = %d, want 4", card.Engine().Unit())
	}
}

func TestEscPopsCardButNotSummary(t *testing.T) {
	opts := testOptions()
	opts.StartUnit = 1
	m := newAppModel(opts)
	m = deliver(t, m, m.Init())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected esc to pop the card screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}

	// A summary screen handles esc itself.
	m.router.Push(summary.New(nil, "Unit 1"))
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected summary to handle esc")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg from summary, got %T", cmd())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewShowsStatusInHeader(t *testing.T) {
	opts := testOptions()
	opts.StartUnit = 6
	m := newAppModel(opts)
	m = deliver(t, m, m.Init())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := fmt.Sprint(updated.View().Content)
	if !strings.Contains(out, "Extras · 1 / 17") {
		t.Errorf("header should show the card position:\n%s", out)
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(testOptions())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(fmt.Sprint(updated.View().Content), "Terminal too small") {
		t.Error("expected min-size message")
	}
}
