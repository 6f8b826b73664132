package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordflash/internal/ui/theme"
)

// MenuItem is one row of a Menu.
type MenuItem struct {
	Label  string
	Detail string // dim text after the label, e.g. "14 words  ★"

	// Shortcut chooses the item directly, e.g. "3" for Unit 3.
	Shortcut string

	Action   func() tea.Cmd
	Disabled bool
}

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
}

var defaultMenuKeys = menuKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Choose: key.NewBinding(key.WithKeys("enter")),
}

// Menu is a vertical list of choices. Disabled items are skipped when
// moving the selection and cannot be chosen.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update moves the selection or runs the chosen item's action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, defaultMenuKeys.Up):
		m.Selected = m.next(-1)
	case key.Matches(kmsg, defaultMenuKeys.Down):
		m.Selected = m.next(1)
	case key.Matches(kmsg, defaultMenuKeys.Choose):
		return m, m.choose(m.Selected)
	default:
		k := kmsg.String()
		for i, item := range m.Items {
			if item.Shortcut != "" && item.Shortcut == k && !item.Disabled {
				m.Selected = i
				return m, m.choose(i)
			}
		}
	}
	return m, nil
}

// next returns the nearest enabled index in direction dir, or the current
// selection when there is none.
func (m Menu) next(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

func (m Menu) choose(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// View renders the items inside a rounded panel of content width cw. The
// selected row is drawn as a marquee-yellow bar.
func (m Menu) View(cw int) string {
	labelWidth := 0
	for _, item := range m.Items {
		labelWidth = max(labelWidth, lipgloss.Width(item.Label))
	}

	rows := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		label := fmt.Sprintf("%-*s", labelWidth, item.Label)
		detail := lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Detail)

		var row string
		switch {
		case i == m.Selected:
			row = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		case item.Disabled:
			row = lipgloss.NewStyle().Foreground(theme.Border).Render("   " + label + " ")
		default:
			row = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label + " ")
		}
		if item.Detail != "" {
			row += " " + detail
		}
		rows = append(rows, row)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 2).
		Render(strings.Join(rows, "\n"))
}
