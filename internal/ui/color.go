// Package ui holds the styles used when pomod prints to a terminal.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomod/internal/interval"
)

// NoColor disables all styling.
var NoColor bool

var (
	ColorWork       = lipgloss.Color("#fb4934")
	ColorShortBreak = lipgloss.Color("#8ec07c")
	ColorLongBreak  = lipgloss.Color("#83a598")
	ColorDim        = lipgloss.Color("#928374")
)

var (
	StyleWork       = lipgloss.NewStyle().Foreground(ColorWork).Bold(true)
	StyleShortBreak = lipgloss.NewStyle().Foreground(ColorShortBreak).Bold(true)
	StyleLongBreak  = lipgloss.NewStyle().Foreground(ColorLongBreak).Bold(true)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold       = lipgloss.NewStyle().Bold(true)
)

// PhaseStyle returns the style for a phase.
func PhaseStyle(s interval.State) lipgloss.Style {
	switch s {
	case interval.Work:
		return StyleWork
	case interval.ShortBreak:
		return StyleShortBreak
	case interval.LongBreak:
		return StyleLongBreak
	default:
		return StyleDim
	}
}

// Render applies style to text unless styling is disabled.
func Render(style lipgloss.Style, text string) string {
	if NoColor {
		return text
	}

	return style.Render(text)
}

func Dim(text string) string {
	return Render(StyleDim, text)
}

func Bold(text string) string {
	return Render(StyleBold, text)
}
