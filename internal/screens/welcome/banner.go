package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordflash/internal/ui/theme"
)

const bannerArt = `
 ██╗    ██╗ ██████╗ ██████╗ ██████╗ ███████╗██╗      █████╗ ███████╗██╗  ██╗
 ██║    ██║██╔═══██╗██╔══██╗██╔══██╗██╔════╝██║     ██╔══██╗██╔════╝██║  ██║
 ██║ █╗ ██║██║   ██║██████╔╝██║  ██║█████╗  ██║     ███████║███████╗███████║
 ██║███╗██║██║   ██║██╔══██╗██║  ██║██╔══╝  ██║     ██╔══██║╚════██║██╔══██║
 ╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝██║     ███████╗██║  ██║███████║██║  ██║
  ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚═╝     ╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝`

const bannerCompact = "W O R D F L A S H"

// BannerWidth is the column count of the full banner art.
const BannerWidth = 76

// RenderBanner returns the WORDFLASH banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < BannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
