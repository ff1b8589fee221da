// Package theme holds the shared palette and text styles. Screens build
// their own composite styles from these colors so the look stays consistent
// without every file repeating hex codes.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette. Blue/purple study-app branding with slate neutrals.
var (
	Primary   = lipgloss.Color("#3B82F6")
	Secondary = lipgloss.Color("#8B5CF6")
	Accent    = lipgloss.Color("#F97316")
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#EAB308")
	Error     = lipgloss.Color("#EF4444")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Shared text styles used across components and screens.
var (
	Strong = lipgloss.NewStyle().Bold(true).Foreground(Text)
	Dim    = lipgloss.NewStyle().Foreground(TextDim)
	Plain  = lipgloss.NewStyle().Foreground(Text)
	Em     = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Good   = lipgloss.NewStyle().Bold(true).Foreground(Success)
	Bad    = lipgloss.NewStyle().Bold(true).Foreground(Error)
)

// Bar returns a full-width chrome bar style for the header and footer.
func Bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
}

// RiskColor maps a plagiarism risk level name to its display color.
func RiskColor(level string) color.Color {
	switch level {
	case "low":
		return Success
	case "medium":
		return Warning
	default:
		return Error
	}
}
