package output

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors for one UI theme. The light and dark palettes
// track the persisted theme preference.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// LightPalette is the default theme.
var LightPalette = Palette{
	Primary: lipgloss.Color("#1D4ED8"), // Blue
	Accent:  lipgloss.Color("#047857"), // Green
	Muted:   lipgloss.Color("#6B7280"), // Gray
	Success: lipgloss.Color("#047857"), // Green
	Warning: lipgloss.Color("#B45309"), // Amber
	Error:   lipgloss.Color("#B91C1C"), // Red
}

// DarkPalette is the dark theme.
var DarkPalette = Palette{
	Primary: lipgloss.Color("#60A5FA"), // Light blue
	Accent:  lipgloss.Color("#34D399"), // Light green
	Muted:   lipgloss.Color("#9CA3AF"), // Light gray
	Success: lipgloss.Color("#34D399"), // Light green
	Warning: lipgloss.Color("#FBBF24"), // Yellow
	Error:   lipgloss.Color("#F87171"), // Light red
}

// Styles are the lipgloss styles derived from one palette.
type Styles struct {
	Title   lipgloss.Style
	Name    lipgloss.Style
	Detail  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Name:    lipgloss.NewStyle().Bold(true),
		Detail:  lipgloss.NewStyle().Foreground(p.Accent),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
		Success: lipgloss.NewStyle().Foreground(p.Success),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),
		Error:   lipgloss.NewStyle().Foreground(p.Error),
	}
}
