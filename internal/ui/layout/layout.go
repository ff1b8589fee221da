// Package layout renders the frame chrome: header bar, key-hint footer and
// the sizing rules for what goes between them.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum usable size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	body := fmt.Sprintf(
		"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height,
	)
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(body)
}

// RenderHeader renders the top bar: brand on the left, the active screen
// title centered, and the signed-in identity (or "guest") on the right.
func RenderHeader(title, userLabel string, width int) string {
	if userLabel == "" {
		userLabel = "guest"
	}

	brand := theme.Em.Render("  EduAI Hub")
	center := theme.Plain.Render(title)
	user := lipgloss.NewStyle().Foreground(theme.Accent).Render("◉ " + userLabel)

	return theme.Bar(width).Render(spread(brand, center, user, width-4))
}

// RenderFooter renders the bottom bar listing the active key bindings.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, theme.Strong.Render(h.Key)+" "+theme.Dim.Render(h.Description))
	}
	return theme.Bar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, height-padded content and footer.
func RenderFrame(header, content, footer string, width, height int) string {
	inner := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(inner).Render(content)
	return header + "\n" + body + "\n" + footer
}

// spread lays out three segments across innerWidth: left-aligned, centered
// and right-aligned, always separated by at least one space.
func spread(left, center, right string, innerWidth int) string {
	lw := lipgloss.Width(left)
	cw := lipgloss.Width(center)
	rw := lipgloss.Width(right)

	gapL := max(1, (innerWidth-cw)/2-lw)
	gapR := max(1, innerWidth-lw-gapL-cw-rw)

	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}
