package summary

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordflash/internal/drill"
	"github.com/abhisek/wordflash/internal/router"
	"github.com/abhisek/wordflash/internal/screen"
	"github.com/abhisek/wordflash/internal/ui/components"
	"github.com/abhisek/wordflash/internal/ui/layout"
	"github.com/abhisek/wordflash/internal/ui/theme"
)

const (
	sparkleInterval = 150 * time.Millisecond
	sparkleCount    = 12
)

var sparkleGlyphs = []string{"✦", "★", "✧", "·"}

// ReviewMsg is sent to the drill screen below the summary when the learner
// asks to review the words they needed help with.
type ReviewMsg struct{}

type sparkleMsg time.Time

type keyMap struct {
	Review key.Binding
	Menu   key.Binding
}

func newKeyMap(canReview bool) keyMap {
	k := keyMap{
		Review: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "Review missed words"),
		),
		Menu: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("Enter", "Menu"),
		),
	}
	k.Review.SetEnabled(canReview)
	return k
}

// SummaryScreen shows the result of a finished deck.
type SummaryScreen struct {
	summary *drill.Summary
	label   string
	keys    keyMap
	frame   int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.BackHandler = (*SummaryScreen)(nil)

// New creates a SummaryScreen for sum. label is the unit's display label.
func New(sum *drill.Summary, label string) *SummaryScreen {
	return &SummaryScreen{
		summary: sum,
		label:   label,
		keys:    newKeyMap(sum != nil && sum.CanReview()),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.summary != nil && s.summary.Passed {
		return sparkleTick()
	}
	return nil
}

func sparkleTick() tea.Cmd {
	return tea.Tick(sparkleInterval, func(t time.Time) tea.Msg {
		return sparkleMsg(t)
	})
}

func (s *SummaryScreen) Title() string {
	if s.summary != nil && s.summary.Review {
		return "Review Complete"
	}
	return "Unit Complete"
}

// HandlesBack reports that Esc returns to the menu instead of the drill.
func (s *SummaryScreen) HandlesBack() bool { return true }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(s.keys.Review, s.keys.Menu)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sparkleMsg:
		s.frame++
		return s, sparkleTick()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Review):
			return s, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return ReviewMsg{} },
			)
		case key.Matches(msg, s.keys.Menu):
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

// Headline returns the completion title and message.
func Headline(sum *drill.Summary, label string) (title, message string) {
	if !sum.Passed {
		return "Try Again", "Don't give up! Review the material and try again."
	}
	message = fmt.Sprintf("Great job! You've completed %s", label)
	if sum.Perfect {
		return "Unit Complete! 🎉", message + " with a perfect score!"
	}
	return "Unit Complete! 🎉", message + "."
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	title, message := Headline(sum, s.label)
	titleColor := theme.Success
	if !sum.Passed {
		titleColor = theme.Accent
	}

	var sections []string
	if sum.Passed {
		sections = append(sections, s.renderSparkles(cw))
	}
	sections = append(sections,
		center.Render(lipgloss.NewStyle().Foreground(titleColor).Bold(true).Render(title)),
		center.Render(lipgloss.NewStyle().Foreground(theme.Text).Render(message)),
	)

	stats := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render(fmt.Sprintf("✓ %d got it", sum.Correct))
	if sum.HelpCount > 0 {
		stats += "    " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("? %d needed help", sum.HelpCount))
	}
	stats += "    " + lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("of %d", sum.DeckSize))
	sections = append(sections, components.Panel(stats, cw, nil))

	if sum.CanReview() {
		words := lipgloss.NewStyle().Foreground(theme.Accent).
			Render(strings.Join(sum.HelpList, "  "))
		sections = append(sections, center.Render(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Words to practise")+"\n"+words))
		sections = append(sections, components.Button("REVIEW MISSED WORDS", true, 26))
	}
	sections = append(sections, components.Button("MENU", !sum.CanReview(), 26))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

// renderSparkles draws a row of sparkles that shifts every frame.
func (s *SummaryScreen) renderSparkles(cw int) string {
	colors := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow),
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan),
		lipgloss.NewStyle().Foreground(theme.Accent),
		lipgloss.NewStyle().Foreground(theme.Primary),
	}
	var b strings.Builder
	for i := 0; i < sparkleCount; i++ {
		n := s.frame + i
		b.WriteString(colors[n%len(colors)].Render(sparkleGlyphs[n%len(sparkleGlyphs)]))
		b.WriteString("  ")
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(b.String())
}
