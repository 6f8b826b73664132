package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordflash/internal/router"
	"github.com/abhisek/wordflash/internal/screen"
	"github.com/abhisek/wordflash/internal/screens/flashcard"
	"github.com/abhisek/wordflash/internal/screens/home"
	"github.com/abhisek/wordflash/internal/screens/welcome"
	"github.com/abhisek/wordflash/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Home home.Deps

	// StartUnit opens this unit directly, skipping the splash. Zero shows
	// the splash and the menu.
	StartUnit int

	// SkipSplash goes straight to the menu.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	init   tea.Cmd
	width  int
	height int
}

// newAppModel creates a new AppModel from opts.
func newAppModel(opts Options) AppModel {
	newHome := func() screen.Screen { return home.New(opts.Home) }

	switch {
	case opts.StartUnit > 0:
		h := newHome()
		drillDeps := opts.Home.Drill
		if drillDeps.Bank == nil {
			drillDeps.Bank = opts.Home.Bank
		}
		card := flashcard.New(drillDeps, opts.StartUnit)
		return AppModel{
			router: router.New(h),
			init: tea.Batch(h.Init(), func() tea.Msg {
				return router.PushScreenMsg{Screen: card}
			}),
		}
	case opts.SkipSplash:
		h := newHome()
		return AppModel{router: router.New(h), init: h.Init()}
	default:
		w := welcome.New(newHome)
		return AppModel{router: router.New(w), init: w.Init()}
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.init
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)
	frame := layout.Compose(m.width, m.height, header, footer, m.router.View)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
