// Package layout renders the application chrome around the active screen:
// header bar, key hint footer and the too-small notice.
package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordflash/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// CompactWidth is the width below which screens drop decoration.
	CompactWidth = 100
)

const appName = "Wordflash"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HintsFromBindings converts enabled bindings to footer hints using their
// help text.
func HintsFromBindings(bindings ...key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// IsCompactWidth reports whether width calls for the compact layout.
func IsCompactWidth(width int) bool {
	return width < CompactWidth
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage tells the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf(
		"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader draws the app name on the left, the screen title centered
// and status (e.g. "Unit 3 · 4 / 15") on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(0, width-4)

	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(appName)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	sideWidth := max(lipgloss.Width(name), lipgloss.Width(right))
	middle := max(0, inner-2*sideWidth)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(sideWidth, lipgloss.Left, name),
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, center),
		lipgloss.PlaceHorizontal(sideWidth, lipgloss.Right, right),
	)
	return bar.Width(width).Padding(0, 1).Render(row)
}

// RenderFooter draws the key hints, dropping trailing hints that do not fit.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	const sep = "   "
	inner := max(0, width-6)

	var b strings.Builder
	for i, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		extra := lipgloss.Width(part)
		if i > 0 {
			extra += len(sep)
		}
		if lipgloss.Width(b.String())+extra > inner {
			break
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(part)
	}
	return bar.Width(width).Padding(0, 2).Render(b.String())
}

// Compose stacks header, body and footer into a width x height frame. body
// is called with the space left between header and footer.
func Compose(width, height int, header, footer string, body func(width, height int) string) string {
	contentHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(body(width, contentHeight))
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
