package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
)

// ToastLevel selects the toast accent color.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// DefaultToastDuration is how long a toast stays visible.
const DefaultToastDuration = 2500 * time.Millisecond

// Toast is a transient notification shown above the footer.
type Toast struct {
	Title       string
	Description string
	Level       ToastLevel
}

// ShowToastMsg requests the root model to display a toast.
type ShowToastMsg struct {
	Toast Toast
}

// ToastExpiredMsg clears a displayed toast. Seq guards against an old
// timer clearing a newer toast.
type ToastExpiredMsg struct {
	Seq int
}

// ShowToast returns a command that displays a toast notification.
func ShowToast(title, description string, level ToastLevel) tea.Cmd {
	return func() tea.Msg {
		return ShowToastMsg{Toast: Toast{Title: title, Description: description, Level: level}}
	}
}

// ExpireToast returns a command that clears the toast after d.
func ExpireToast(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// View renders the toast box.
func (t Toast) View(width int) string {
	accent := theme.Primary
	icon := "ℹ"
	switch t.Level {
	case ToastSuccess:
		accent = theme.Success
		icon = "✓"
	case ToastError:
		accent = theme.Error
		icon = "✗"
	}

	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(icon + " " + t.Title)
	body := title
	if t.Description != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Description)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Render(body)

	return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
}
