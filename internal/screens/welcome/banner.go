package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iq360/internal/ui/theme"
)

const bannerArt = `
 ██████╗  ██████╗  ██████╗ ██╗ ██████╗
 ╚════██╗██╔════╝ ██╔═████╗██║██╔═══██╗
  █████╔╝███████╗ ██║██╔██║██║██║   ██║
  ╚═══██╗██╔═══██╗████╔╝██║██║██║▄▄ ██║
 ██████╔╝╚██████╔╝╚██████╔╝██║╚██████╔╝
 ╚═════╝  ╚═════╝  ╚═════╝ ╚═╝ ╚══▀▀═╝`

const bannerCompact = "3 6 0 I Q"

// RenderBanner returns the 360IQ banner in the primary color, or a spaced
// fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 44 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
