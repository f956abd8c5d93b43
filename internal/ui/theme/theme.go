package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: floodlit ground, pitch and scoreboard
var (
	Primary      = lipgloss.Color("#16A34A") // Outfield Green
	Secondary    = lipgloss.Color("#0EA5E9") // Sky
	Accent       = lipgloss.Color("#F97316") // Kookaburra Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#DC2626") // Cherry Red
	Text         = lipgloss.Color("#F8FAFC") // Whites
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#052E16") // Night Pitch
	BgCard       = lipgloss.Color("#14532D") // Dark Turf
	Border       = lipgloss.Color("#3F6212") // Moss
	ArcadeYellow = lipgloss.Color("#FACC15") // Scoreboard Yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Stump Cam Cyan
	Ball         = lipgloss.Color("#B91C1C") // Red Ball
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(ArcadeYellow).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(ArcadeYellow).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
