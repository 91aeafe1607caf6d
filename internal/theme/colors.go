package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - table headers
)

// Repository state colors
const (
	ColorClean   Color = "2" // Green - nothing to commit or push
	ColorDirty   Color = "3" // Yellow - dirty but within thresholds
	ColorOverdue Color = "1" // Red - reminder due
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Dark gray - selected row background
	ColorSubtle    Color = "245" // Light gray - labels
)
