package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
)

// ProgressBar is a one-line horizontal meter. Fill overrides the default
// fill color, which the plagiarism screen uses to match its risk level.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Fill        color.Color
}

// NewProgressBar creates a meter occupying at most width cells.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        theme.Secondary,
	}
}

// View renders the label, the bar and optionally the percentage.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Plain.Render(p.Label))
		b.WriteString("  ")
	}

	cells := p.Width - lipgloss.Width(b.String())
	if p.ShowPercent {
		cells -= 6
	}
	cells = max(cells, 4)

	filled := min(max(int(float64(cells)*p.Percent), 0), cells)

	b.WriteString(lipgloss.NewStyle().Foreground(p.Fill).Render(strings.Repeat("█", filled)))
	b.WriteString(theme.Dim.Render(strings.Repeat("░", cells-filled)))

	if p.ShowPercent {
		b.WriteString(theme.Dim.Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}
	return b.String()
}
