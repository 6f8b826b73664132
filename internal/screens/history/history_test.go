package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordflash/internal/router"
	"github.com/abhisek/wordflash/internal/store"
)

// mockRunRepo implements store.RunRepo for testing.
type mockRunRepo struct {
	runs []store.RunRecord
	err  error
}

func (m *mockRunRepo) AppendRun(_ context.Context, r store.RunRecord) error {
	m.runs = append(m.runs, r)
	return nil
}
func (m *mockRunRepo) RecentRuns(_ context.Context, _ int) ([]store.RunRecord, error) {
	return m.runs, m.err
}
func (m *mockRunRepo) UnitRuns(_ context.Context, _ int, _ int) ([]store.RunRecord, error) {
	return nil, nil
}
func (m *mockRunRepo) Stats(_ context.Context) ([]store.UnitStats, error) {
	return nil, nil
}
func (m *mockRunRepo) Reset(_ context.Context) (int64, error) {
	return 0, nil
}

func testRuns() []store.RunRecord {
	finished := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	return []store.RunRecord{
		{
			ID: "b", Unit: 3, DeckSize: 15, Correct: 11, HelpCount: 4, Passed: true,
			Missed:    []string{"were", "said", "where", "any"},
			StartedAt: finished.Add(-42 * time.Second), FinishedAt: finished,
		},
		{
			ID: "a", Unit: 1, DeckSize: 14, Correct: 14, Passed: true, Perfect: true,
			StartedAt: finished.Add(-time.Minute), FinishedAt: finished,
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	s.Update(s.Init()())
}

func TestHistoryLoadsRuns(t *testing.T) {
	s := New(&mockRunRepo{runs: testRuns()}, nil)
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading message before data arrives")
	}
	load(t, s)

	view := s.View(120, 30)
	for _, want := range []string{"Unit 3", "11/15", "0:42", "perfect"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	s := New(&mockRunRepo{}, nil)
	load(t, s)
	if !strings.Contains(s.View(100, 30), "No runs yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistoryError(t *testing.T) {
	s := New(&mockRunRepo{err: errors.New("disk gone")}, nil)
	load(t, s)
	if !strings.Contains(s.View(100, 30), "disk gone") {
		t.Error("expected error message")
	}
}

func TestHistoryExpandShowsMissedWords(t *testing.T) {
	s := New(&mockRunRepo{runs: testRuns()}, nil)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "Missed: were, said, where, any") {
		t.Error("expected missed words after expanding")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "No missed words") {
		t.Error("expected perfect run to show no missed words")
	}
}

func TestHistoryNavigationBounds(t *testing.T) {
	s := New(&mockRunRepo{runs: testRuns()}, nil)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestHistoryEscPops(t *testing.T) {
	s := New(&mockRunRepo{}, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestFormatRunLabelsReview(t *testing.T) {
	run := testRuns()[0]
	run.Review = true
	run.DeckSize = 4
	run.Correct = 3
	got := FormatRun(run, "Unit 3")
	if !strings.Contains(got, "Unit 3 review") {
		t.Errorf("FormatRun = %q, want review label", got)
	}
	if !strings.Contains(got, " 3/4") {
		t.Errorf("FormatRun = %q, want score 3/4", got)
	}
}
