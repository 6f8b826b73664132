package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordflash/internal/ui/theme"
)

const (
	minContentWidth = 20
	maxContentWidth = 60

	// frameInset is the frame border (2) plus inner padding (4).
	frameInset = 6
)

// ContentWidth returns the width shared by every section inside a Frame so
// that stacked panels line up.
func ContentWidth(frameWidth int) int {
	return max(minContentWidth, min(frameWidth-frameInset, maxContentWidth))
}

// Frame draws the double-border screen frame and centers content in it.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel wraps content in a rounded box of content width cw. A nil border
// uses the default border color.
func Panel(content string, cw int, border color.Color) string {
	if border == nil {
		border = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Button renders a fixed-width key button. The active button is filled in
// marquee yellow and marked with a pointer.
func Button(label string, active bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !active {
		return style.
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Render(label)
	}
	return style.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Render("▸ " + label)
}
