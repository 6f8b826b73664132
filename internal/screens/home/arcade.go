package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordflash/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ██╗    ██╗ ██████╗ ██████╗ ██████╗ ███████╗██╗      █████╗ ███████╗██╗  ██╗
 ██║    ██║██╔═══██╗██╔══██╗██╔══██╗██╔════╝██║     ██╔══██╗██╔════╝██║  ██║
 ██║ █╗ ██║██║   ██║██████╔╝██║  ██║█████╗  ██║     ███████║███████╗███████║
 ██║███╗██║██║   ██║██╔══██╗██║  ██║██╔══╝  ██║     ██╔══██║╚════██║██╔══██║
 ╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝██║     ███████╗██║  ██║███████║██║  ██║
  ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚═╝     ╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝`

const arcadeTitleCompact = "W · O · R · D · F · L · A · S · H"

// titleFullWidth is the column count of arcadeTitleFull.
const titleFullWidth = 76

// renderTitle returns the styled title block or compact fallback.
func renderTitle(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact || width < titleFullWidth+4 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

// renderStatsBar renders the journal stats in a bordered box matching content width.
func renderStatsBar(st dashboard, cw int, compact bool) string {
	passedStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	perfectStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	runStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			passedStyle.Render(fmt.Sprintf("✓%d/%d", st.unitsPassed, st.units)),
			perfectStyle.Render(fmt.Sprintf("★%d", st.perfects)),
			runStyle.Render(fmt.Sprintf("▶%d", st.runs)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			passedStyle.Render(fmt.Sprintf("✓ %d/%d UNITS", st.unitsPassed, st.units)),
			perfectStyle.Render(fmt.Sprintf("★ %d PERFECT", st.perfects)),
			runStyle.Render(fmt.Sprintf("▶ %d RUNS", st.runs)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderHintsNote renders a dim note when example sentences are off.
func renderHintsNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("Set an LLM API key to hear example sentences (see wordflash --help)")
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
