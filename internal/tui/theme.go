package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorPrimary = colorBlue
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

// paletteColors returns every palette color the styles draw from.
func paletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorRed, colorYellow, colorGreen, colorBlue, colorLavender,
		colorText, colorSubtext0, colorOverlay0, colorSurface1, colorBase,
	}
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(1, 4).
			Width(62)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	promptStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	resultStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	choiceStyle   = lipgloss.NewStyle().Foreground(colorText).Padding(0, 2)
	selectedStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorPrimary).Bold(true).Padding(0, 2)
	wordsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1).
			Width(52)
	langActiveStyle   = lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus).Padding(0, 1)
	langInactiveStyle = lipgloss.NewStyle().Foreground(colorOverlay0).Padding(0, 1)
	modalStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Width(50)
)
