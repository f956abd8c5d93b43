package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgequiz/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗  ██████╗ ███████╗   ██████╗ ██╗   ██╗██╗███████╗
 ██╔════╝██╔══██╗██╔════╝ ██╔════╝  ██╔═══██╗██║   ██║██║╚══███╔╝
 █████╗  ██║  ██║██║  ███╗█████╗    ██║   ██║██║   ██║██║  ███╔╝
 ██╔══╝  ██║  ██║██║   ██║██╔══╝    ██║▄▄ ██║██║   ██║██║ ███╔╝
 ███████╗██████╔╝╚██████╔╝███████╗  ╚██████╔╝╚██████╔╝██║███████╗
 ╚══════╝╚═════╝  ╚═════╝ ╚══════╝   ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "E D G E   Q U I Z"

// bannerMinWidth is the narrowest terminal that fits the block letters.
const bannerMinWidth = 69

// RenderBanner returns the EDGE QUIZ banner in scoreboard yellow.
// Uses a compact fallback for terminals narrower than bannerMinWidth.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
