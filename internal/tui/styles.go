package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/numeral/internal/theme"
)

type styles struct {
	heading       lipgloss.Style
	heroBox       lipgloss.Style
	label         lipgloss.Style
	fieldBox      lipgloss.Style
	fieldFocused  lipgloss.Style
	inlineError   lipgloss.Style
	button        lipgloss.Style
	buttonFocused lipgloss.Style
	resultLabel   lipgloss.Style
	resultText    lipgloss.Style
	failure       lipgloss.Style
	helper        lipgloss.Style
	key           lipgloss.Style
}

type palette struct {
	accent     lipgloss.Color
	background lipgloss.Color
	text       lipgloss.Color
	muted      lipgloss.Color
	border     lipgloss.Color
	errorText  lipgloss.Color
	buttonText lipgloss.Color
	result     lipgloss.Color
}

var (
	darkPalette = palette{
		accent:     lipgloss.Color("#ff8c00"),
		background: lipgloss.Color("#2b1400"),
		text:       lipgloss.Color("#fff4d0"),
		muted:      lipgloss.Color("244"),
		border:     lipgloss.Color("#56526e"),
		errorText:  lipgloss.Color("9"),
		buttonText: lipgloss.Color("#0f0f0f"),
		result:     lipgloss.Color("#ffd166"),
	}
	lightPalette = palette{
		accent:     lipgloss.Color("#1d4ed8"),
		background: lipgloss.Color("#eef2ff"),
		text:       lipgloss.Color("#111827"),
		muted:      lipgloss.Color("240"),
		border:     lipgloss.Color("#9ca3af"),
		errorText:  lipgloss.Color("#b91c1c"),
		buttonText: lipgloss.Color("#ffffff"),
		result:     lipgloss.Color("#7c2d12"),
	}

	darkStyles  = buildStyles(darkPalette)
	lightStyles = buildStyles(lightPalette)
)

func stylesFor(t theme.Theme) styles {
	if t == theme.Dark {
		return darkStyles
	}
	return lightStyles
}

func buildStyles(p palette) styles {
	return styles{
		heading:       lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		heroBox:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Foreground(p.text).Background(p.background).Padding(0, 2),
		label:         lipgloss.NewStyle().Bold(true).Foreground(p.text),
		fieldBox:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.border).Padding(0, 1),
		fieldFocused:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.accent).Padding(0, 1),
		inlineError:   lipgloss.NewStyle().Foreground(p.errorText),
		button:        lipgloss.NewStyle().Foreground(p.text).Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		buttonFocused: lipgloss.NewStyle().Bold(true).Foreground(p.buttonText).Background(p.accent).Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 1),
		resultLabel:   lipgloss.NewStyle().Bold(true).Foreground(p.text),
		resultText:    lipgloss.NewStyle().Bold(true).Foreground(p.result),
		failure:       lipgloss.NewStyle().Foreground(p.errorText),
		helper:        lipgloss.NewStyle().Foreground(p.muted),
		key:           lipgloss.NewStyle().Bold(true).Foreground(p.buttonText).Background(p.accent).Padding(0, 1),
	}
}
