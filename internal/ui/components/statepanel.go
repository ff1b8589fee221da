package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
)

// StatePanel switches between an error panel, a loading skeleton, and the
// real content. Exactly one of the three renders; the error panel wins when
// both an error and the loading flag are set. It holds no state of its own.
type StatePanel struct {
	Loading   bool
	Err       string
	Skeleton  string
	RetryHint string
}

// Render returns the error panel, the skeleton, or content.
func (p StatePanel) Render(content string, width int) string {
	if p.Err != "" {
		return p.renderError(width)
	}
	if p.Loading {
		if p.Skeleton != "" {
			return p.Skeleton
		}
		return RenderSkeleton(width, 4)
	}
	return content
}

func (p StatePanel) renderError(width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("⚠ Something went wrong")
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(p.Err)

	msg := title + "\n\n" + body
	if p.RetryHint != "" {
		msg += "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(p.RetryHint)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Padding(1, 2).
		Render(msg)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// RenderSkeleton renders a block of dimmed placeholder bars, the terminal
// stand-in for a loading skeleton.
func RenderSkeleton(width, lines int) string {
	barWidth := width - 8
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	bar := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("░", barWidth))
	for i := 0; i < lines; i++ {
		b.WriteString("  " + bar + "\n")
	}
	return b.String()
}
