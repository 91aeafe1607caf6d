package theme

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Repository state styles
var (
	CleanStyle = lipgloss.NewStyle().
			Foreground(ColorClean)

	DirtyStyle = lipgloss.NewStyle().
			Foreground(ColorDirty)

	OverdueStyle = lipgloss.NewStyle().
			Foreground(ColorOverdue).
			Bold(true)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// TableStyles returns the styles for the repository table
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Foreground(ColorSecondary).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(ColorNormal)
	s.Selected = s.Selected.
		Foreground(ColorHighlight).
		Background(ColorSelected).
		Bold(false)
	return s
}
