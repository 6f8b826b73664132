package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordflash/internal/router"
	"github.com/abhisek/wordflash/internal/screen"
	"github.com/abhisek/wordflash/internal/store"
	"github.com/abhisek/wordflash/internal/ui/layout"
	"github.com/abhisek/wordflash/internal/ui/theme"
)

// Limit is the number of runs listed.
const Limit = 50

// LabelFunc maps a unit id to its display label.
type LabelFunc func(unit int) string

type historyLoadedMsg struct {
	Runs []store.RunRecord
	Err  error
}

// HistoryScreen lists recent runs from the journal.
type HistoryScreen struct {
	runRepo  store.RunRepo
	label    LabelFunc
	runs     []store.RunRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(runRepo store.RunRepo, label LabelFunc) *HistoryScreen {
	if label == nil {
		label = func(unit int) string { return fmt.Sprintf("Unit %d", unit) }
	}
	return &HistoryScreen{
		runRepo:  runRepo,
		label:    label,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		runs, err := s.runRepo.RecentRuns(context.Background(), Limit)
		return historyLoadedMsg{Runs: runs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Missed words"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.runs = msg.Runs
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.runs)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.runs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No runs yet. Pick a unit and start reading!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selected row visible.
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}

	for i := start; i < len(s.runs) && i < start+rows; i++ {
		run := s.runs[i]

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+FormatRun(run, s.label(run.Unit)))+" "+outcome(run)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := "    No missed words"
			if len(run.Missed) > 0 {
				detail = "    Missed: " + strings.Join(run.Missed, ", ")
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatRun renders one journal row, e.g. "Oct 17, 2026  Unit 3 review  11/15  0:42".
func FormatRun(run store.RunRecord, label string) string {
	if run.Review {
		label += " review"
	}
	d := run.Duration()
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%s  %-14s %2d/%-2d  %d:%02d",
		run.FinishedAt.Local().Format("Jan 02, 2006"), label,
		run.Correct, run.DeckSize, mins, secs)
}

func outcome(run store.RunRecord) string {
	switch {
	case run.Perfect:
		return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("★ perfect")
	case run.Passed:
		return theme.Correct.Render("✓ passed")
	default:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("↻ try again")
	}
}
