// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette. The defaults follow the Hacker News site:
// orange header, cream text, grey subtext.
type Theme struct {
	// Primary is the accent used for titles, the cursor and badges.
	Primary lipgloss.Color

	// Secondary is used for section headers.
	Secondary lipgloss.Color

	Background lipgloss.Color
	Foreground lipgloss.Color

	// Muted is the subtext colour for meta lines and help.
	Muted lipgloss.Color

	// Error colours fetch failures.
	Error lipgloss.Color

	// Border frames input fields.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#FF6600"),
		Secondary:  lipgloss.Color("#F6F6EF"),
		Background: lipgloss.Color("#1C1C1C"),
		Foreground: lipgloss.Color("#E8E6DF"),
		Muted:      lipgloss.Color("#828282"),
		Error:      lipgloss.Color("#E5534B"),
		Border:     lipgloss.Color("#4A4A4A"),
		Bar:        lipgloss.Color("#262626"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	// Selected highlights the result under the cursor.
	Selected lipgloss.Style

	Error      lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style

	// Host renders the link domain after a story title.
	Host lipgloss.Style

	// Meta renders the points/author/comments line under a story.
	Meta lipgloss.Style

	// Badge marks the active sort and filter in the status bar.
	Badge lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Host: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Meta: lipgloss.NewStyle().
			Foreground(theme.Muted).
			PaddingLeft(7),

		Badge: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
