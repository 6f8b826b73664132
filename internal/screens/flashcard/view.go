package flashcard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordflash/internal/ui/components"
	"github.com/abhisek/wordflash/internal/ui/theme"
)

const buttonWidth = 20

func (s *FlashcardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.word == "" {
		return ""
	}

	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string

	done := s.position - 1
	if s.advancing {
		done = s.position
	}
	bar := components.DeckProgress(done, s.total, cw)
	bar.Label = s.Status()
	sections = append(sections, bar.View())

	if s.review {
		sections = append(sections, center.Render(
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Review: missed words")))
	}

	sections = append(sections, center.Render(s.renderCard(cw)))
	sections = append(sections, center.Render(s.renderHint()))
	sections = append(sections, center.Render(s.renderButtons()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (s *FlashcardScreen) renderCard(cw int) string {
	style := theme.WordCard.Width(cw - 10)
	if s.helped {
		style = theme.WordCardHelped.Width(cw - 10)
	}
	if s.advancing && s.answered {
		style = style.BorderForeground(theme.Success)
	}
	return style.Render(theme.Word.Render(s.word))
}

func (s *FlashcardScreen) renderHint() string {
	if s.advancing {
		if s.answered {
			return theme.Correct.Render("✓ Got it!")
		}
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("Keep practising this one")
	}
	if !s.helped {
		return theme.Hint.Render("Read the word out loud")
	}
	switch s.hint {
	case hintLoading:
		return theme.Hint.Render("♪ listen… thinking of a sentence")
	case hintReady:
		return theme.Sentence.Render("“" + s.sentence + "”")
	default:
		return theme.Hint.Render("♪ listen to the word, then try again")
	}
}

func (s *FlashcardScreen) renderButtons() string {
	gotIt := components.Button("Space  GOT IT", !s.helped, buttonWidth)
	help := components.Button("H  NEED HELP", s.helped, buttonWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, gotIt, "  ", help)
}

func renderError(width, height int, msg string) string {
	text := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Could not start this unit") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}
