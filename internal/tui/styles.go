package tui

import "github.com/charmbracelet/lipgloss"

// Charcoal-to-silver palette; true-color hex values.
const (
	colorCharcoal lipgloss.Color = "#1e1e1e"
	colorGraphite lipgloss.Color = "#3a3a3a"
	colorSlate    lipgloss.Color = "#505050"
	colorAsh      lipgloss.Color = "#8a8a8a"
	colorSilver   lipgloss.Color = "#c0c0c0"
	colorPearl    lipgloss.Color = "#e6e6e6"
	colorWhite    lipgloss.Color = "#ffffff"
	colorGold     lipgloss.Color = "#f2c94c"
	colorRed      lipgloss.Color = "#e5534b"
	colorGreen    lipgloss.Color = "#6bc46d"
)

// Semantic aliases.
const (
	colorText    = colorPearl
	colorMuted   = colorAsh
	colorBorder  = colorSlate
	colorFocus   = colorWhite
	colorPrice   = colorGold
	colorPin     = colorRed
	colorSuccess = colorGreen
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	subtitleStyle = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	textStyle     = lipgloss.NewStyle().Foreground(colorText)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSilver)
	hintStyle     = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	priceStyle    = lipgloss.NewStyle().Foreground(colorPrice)
	pinStyle      = lipgloss.NewStyle().Foreground(colorPin).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	crownStyle    = lipgloss.NewStyle().Foreground(colorSilver).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	focusCardStyle = cardStyle.BorderForeground(colorFocus)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorGraphite).
			Padding(0, 2)
	focusButtonStyle    = buttonStyle.Background(colorSlate).Foreground(colorWhite).Bold(true)
	disabledButtonStyle = buttonStyle.Foreground(colorAsh).Background(colorCharcoal)

	fieldLabelStyle = lipgloss.NewStyle().Foreground(colorSilver).Bold(true)
	focusLabelStyle = fieldLabelStyle.Foreground(colorWhite).Underline(true)
	chipStyle       = lipgloss.NewStyle().Foreground(colorCharcoal).Background(colorPearl).Padding(0, 1)
	focusChipStyle  = chipStyle.Background(colorWhite).Bold(true)
)

// cursorMarker is the focus gutter used by lists and form rows.
func cursorMarker(focused bool) string {
	if focused {
		return "▶ "
	}
	return "  "
}
