package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordflash/internal/store"
	"github.com/abhisek/wordflash/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default cyan
	MascotCelebrating                      // Gold, star eyes: last run was perfect
	MascotEncouraging                      // Orange, thumbs up: last run needs another go
)

const mascotIdle = `╭───────╮
│ ◉   ◉ │
│   ‿   │
│  abc  │
╰───────╯`

const mascotCelebrating = `╭───────╮
│ ★   ★ │
│   ▿   │
│  abc  │
╰─╥───╥─╯
  ╚═══╝`

const mascotEncouraging = `╭───────╮
│ ◉   ◉ │ 👍
│   ‿   │
│  abc  │
╰───────╯`

// mascotFor picks the variant from the most recent run.
func mascotFor(last *store.RunRecord) MascotVariant {
	switch {
	case last == nil:
		return MascotIdle
	case last.Perfect:
		return MascotCelebrating
	case !last.Passed:
		return MascotEncouraging
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.ArcadeCyan

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotEncouraging:
		art = mascotEncouraging
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
