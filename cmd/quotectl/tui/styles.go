package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorDanger  = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

type palette struct {
	text       lipgloss.Color
	background lipgloss.Color
	border     lipgloss.Color
}

var (
	darkPalette = palette{
		text:       lipgloss.Color("#F3F4F6"),
		background: lipgloss.Color("#111827"),
		border:     lipgloss.Color("#4B5563"),
	}

	lightPalette = palette{
		text:       lipgloss.Color("#111827"),
		background: lipgloss.Color("#F9FAFB"),
		border:     lipgloss.Color("#D1D5DB"),
	}
)

// theme holds the styles for one colour mode.
type theme struct {
	app        lipgloss.Style
	title      lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	muted      lipgloss.Style
	selected   lipgloss.Style
	unselected lipgloss.Style
	total      lipgloss.Style
	success    lipgloss.Style
	err        lipgloss.Style
	box        lipgloss.Style
	activeBox  lipgloss.Style
	chip       lipgloss.Style
	activeChip lipgloss.Style
}

func newTheme(dark bool) theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return theme{
		app:   lipgloss.NewStyle().Foreground(p.text).Background(p.background).Padding(1, 2),
		title: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		label: lipgloss.NewStyle().Foreground(colorMuted).Width(12),
		value: lipgloss.NewStyle().Foreground(p.text),
		muted: lipgloss.NewStyle().Foreground(colorMuted),
		selected: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		unselected: lipgloss.NewStyle().Foreground(p.text),
		total:      lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
		success:    lipgloss.NewStyle().Foreground(colorSuccess),
		err:        lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		activeBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1),
		chip: lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
		activeChip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F3F4F6")).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1),
	}
}
