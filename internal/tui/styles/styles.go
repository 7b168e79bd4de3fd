// Package styles provides Lip Gloss styles for the catsays TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Favorite    = lipgloss.Color("#EC4899") // Pink
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	// TitleStyle is for the "The cat N says..." heading.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// CounterStyle highlights the counter inside the title.
	CounterStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Background(Primary).
			Bold(true)
)

// Card styles.
var (
	// CardStyle is the main image card.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FavoriteCardStyle is the main card when the image is a favorite.
	FavoriteCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Favorite).
				Padding(0, 1)

	// ImageURLStyle is for the image link inside the card.
	ImageURLStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Underline(true)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for inline error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SectionTitleStyle is for section headings such as the favorites list.
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)
)

// Input styles.
var (
	// InputLabelStyle is for the caption label.
	InputLabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// InputStyle is for the caption text input.
	InputStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Background).
			Padding(0, 1)
)

// Shortcut bar styles.
var (
	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)
