package home

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordflash/internal/router"
	"github.com/abhisek/wordflash/internal/screen"
	"github.com/abhisek/wordflash/internal/screens/flashcard"
	"github.com/abhisek/wordflash/internal/screens/history"
	"github.com/abhisek/wordflash/internal/store"
	"github.com/abhisek/wordflash/internal/ui/components"
	"github.com/abhisek/wordflash/internal/ui/layout"
	"github.com/abhisek/wordflash/internal/wordbank"
)

// Deps are the collaborators of the home screen.
type Deps struct {
	Bank *wordbank.Bank

	// Runs is the run journal; nil hides stats and history.
	Runs store.RunRepo

	// Drill is passed to every card screen the menu opens.
	Drill flashcard.Deps

	HintsEnabled bool
	Logger       *slog.Logger
}

// dashboard holds the aggregates shown in the stats bar.
type dashboard struct {
	units       int
	unitsPassed int
	perfects    int
	runs        int
	passed      map[int]bool
	perfect     map[int]bool
}

type statsLoadedMsg struct {
	Stats []store.UnitStats
	Last  *store.RunRecord
	Err   error
}

// HomeScreen is the unit selection menu.
type HomeScreen struct {
	deps          Deps
	menu          components.Menu
	units         []wordbank.Unit
	stats         dashboard
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Drill.Bank == nil {
		deps.Drill.Bank = deps.Bank
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	h := &HomeScreen{
		deps:  deps,
		units: deps.Bank.Units(),
		stats: dashboard{units: deps.Bank.Len()},
	}

	var items []components.MenuItem
	for _, u := range h.units {
		id := u.ID
		item := components.MenuItem{
			Label:  strings.ToUpper(u.DisplayLabel()),
			Action: func() tea.Cmd { return h.startUnit(id) },
		}
		if id <= 9 {
			item.Shortcut = strconv.Itoa(id)
		}
		items = append(items, item)
	}
	items = append(items, components.MenuItem{
		Label:    "HISTORY",
		Disabled: deps.Runs == nil,
		Action: func() tea.Cmd {
			sc := history.New(deps.Runs, deps.Bank.Label)
			return func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
		},
	})
	items = append(items, components.MenuItem{
		Label:  "EXIT",
		Action: func() tea.Cmd { return tea.Quit },
	})
	h.menu = components.NewMenu(items)
	h.refreshDetails()
	return h
}

func (h *HomeScreen) startUnit(id int) tea.Cmd {
	sc := flashcard.New(h.deps.Drill, id)
	return func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.deps.Runs
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := repo.Stats(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		recent, err := repo.RecentRuns(ctx, 1)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		msg := statsLoadedMsg{Stats: stats}
		if len(recent) > 0 {
			msg.Last = &recent[0]
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			h.deps.Logger.Warn("load stats", "err", msg.Err)
			return h, nil
		}
		h.applyStats(msg)
		return h, nil

	case screen.ResumedMsg:
		return h, h.loadStats()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) applyStats(msg statsLoadedMsg) {
	d := dashboard{
		units:   h.deps.Bank.Len(),
		passed:  make(map[int]bool),
		perfect: make(map[int]bool),
	}
	for _, st := range msg.Stats {
		d.runs += st.Runs
		d.perfects += st.Perfects
		if st.Passes > 0 && h.deps.Bank.Has(st.Unit) {
			d.passed[st.Unit] = true
			d.unitsPassed++
		}
		if st.Perfects > 0 {
			d.perfect[st.Unit] = true
		}
	}
	h.stats = d
	h.mascotVariant = mascotFor(msg.Last)
	h.refreshDetails()
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "1-9", Description: "Unit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(width-4, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}
	if h.deps.Runs != nil {
		sections = append(sections, renderStatsBar(h.stats, cw, compact))
	}
	sections = append(sections, h.menu.View(cw))
	if !h.deps.HintsEnabled {
		sections = append(sections, renderHintsNote(cw))
	}

	gap := "\n\n"
	if compact {
		gap = "\n"
	}
	return components.Frame(strings.Join(sections, gap), width, height)
}

// refreshDetails writes each unit's word count and best result into its
// menu row.
func (h *HomeScreen) refreshDetails() {
	for i, u := range h.units {
		detail := fmt.Sprintf("%2d words", len(u.Words))
		switch {
		case h.stats.perfect[u.ID]:
			detail += "  ★"
		case h.stats.passed[u.ID]:
			detail += "  ✓"
		}
		h.menu.Items[i].Detail = detail
	}
}

func (h *HomeScreen) Title() string {
	return "Pick a unit"
}
