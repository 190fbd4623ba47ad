package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Package-level styles instance (nil until initialized)
var appStyles *Styles

// Styles holds all application styles using terminal default colors
type Styles struct {
	Subtle color.Color

	SelectedStyle    lipgloss.Style
	SearchInputStyle lipgloss.Style
	HeadingStyle     lipgloss.Style
	FooterStyle      lipgloss.Style
	SubtleStyle      lipgloss.Style
	BadgeStyle       lipgloss.Style
	PriceStyle       lipgloss.Style
	PlaceholderStyle lipgloss.Style
	ErrorStyle       lipgloss.Style
	SuccessStyle     lipgloss.Style
}

// newStyles creates a new Styles instance using terminal default colors (NoColor)
func newStyles() *Styles {
	// NoColor{} tells lipgloss to use the terminal's default colors
	noColor := lipgloss.NoColor{}

	return &Styles{
		Subtle: noColor,

		SelectedStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		SearchInputStyle: lipgloss.NewStyle().
			Foreground(noColor),

		HeadingStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true).
			Underline(true),

		FooterStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Italic(true),

		SubtleStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Faint(true),

		BadgeStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Reverse(true),

		PriceStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		PlaceholderStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Italic(true),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		SuccessStyle: lipgloss.NewStyle().
			Foreground(noColor),
	}
}

// getStyles returns the current styles instance, with fallback for startup
func getStyles() *Styles {
	if appStyles == nil {
		return newStyles()
	}
	return appStyles
}
