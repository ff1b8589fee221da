package humanizer

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/siddiq-x/AI-tutor/internal/humanize"
	"github.com/siddiq-x/AI-tutor/internal/screen"
	"github.com/siddiq-x/AI-tutor/internal/ui/components"
	"github.com/siddiq-x/AI-tutor/internal/ui/layout"
	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
	"github.com/siddiq-x/AI-tutor/internal/vault"
)

// rewrittenMsg carries the humanized text.
type rewrittenMsg struct {
	original  string
	rewritten string
	archErr   error
}

// savedMsg reports a vault save attempt.
type savedMsg struct{ err error }

// HumanizerScreen rewrites stiff AI-sounding text into a casual register.
type HumanizerScreen struct {
	rewriter *humanize.Rewriter
	archive  *humanize.Archive
	vault    *vault.Service

	input components.TextArea

	working   bool
	hasResult bool
	original  string
	result    string
	saved     bool
}

var _ screen.Screen = (*HumanizerScreen)(nil)
var _ screen.AuthRequirer = (*HumanizerScreen)(nil)

// New creates a HumanizerScreen.
func New(rewriter *humanize.Rewriter, archive *humanize.Archive, vaultSvc *vault.Service) *HumanizerScreen {
	return &HumanizerScreen{
		rewriter: rewriter,
		archive:  archive,
		vault:    vaultSvc,
		input:    components.NewTextArea("Paste the text to humanize...", 60, 5),
	}
}

func (h *HumanizerScreen) Title() string {
	return "AI Humanizer"
}

func (h *HumanizerScreen) RequiresAuth() bool {
	return true
}

func (h *HumanizerScreen) Init() tea.Cmd {
	return h.input.Focus()
}

func (h *HumanizerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case rewrittenMsg:
		h.working = false
		h.hasResult = true
		h.original = msg.original
		h.result = msg.rewritten
		h.saved = false
		if msg.archErr != nil {
			return h, components.ShowToast("Archive not updated", msg.archErr.Error(), components.ToastError)
		}
		return h, nil

	case savedMsg:
		if msg.err != nil {
			return h, components.ShowToast("Save failed", msg.err.Error(), components.ToastError)
		}
		h.saved = true
		return h, components.ShowToast("Saved to vault", "", components.ToastSuccess)

	case tea.KeyPressMsg:
		if h.working {
			return h, nil
		}
		switch msg.String() {
		case "ctrl+s":
			return h, h.rewrite()
		case "ctrl+y":
			return h, h.copyResult()
		case "ctrl+v":
			return h, h.save()
		}
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h *HumanizerScreen) rewrite() tea.Cmd {
	text := strings.TrimSpace(h.input.Value())
	if text == "" {
		return components.ShowToast("Text required", "Paste something to humanize first.", components.ToastError)
	}

	h.working = true
	rw := h.rewriter
	archive := h.archive
	return tea.Tick(rw.Delay(), func(time.Time) tea.Msg {
		rewritten := rw.Rewrite(text)
		var archErr error
		if archive != nil {
			archErr = archive.Append(context.Background(), text, rewritten)
		}
		return rewrittenMsg{original: text, rewritten: rewritten, archErr: archErr}
	})
}

func (h *HumanizerScreen) copyResult() tea.Cmd {
	if !h.hasResult {
		return nil
	}
	text := h.result
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return components.ShowToastMsg{Toast: components.Toast{
				Title: "Copy failed", Description: err.Error(), Level: components.ToastError,
			}}
		}
		return components.ShowToastMsg{Toast: components.Toast{
			Title: "Copied to clipboard", Level: components.ToastSuccess,
		}}
	}
}

func (h *HumanizerScreen) save() tea.Cmd {
	if !h.hasResult {
		return nil
	}
	if h.saved {
		return components.ShowToast("Already saved", "", components.ToastInfo)
	}
	original, result := h.original, h.result
	svc := h.vault
	return func() tea.Msg {
		_, err := svc.Save(context.Background(), vault.ToolHumanizer, original, result)
		return savedMsg{err: err}
	}
}

func (h *HumanizerScreen) View(width, height int) string {
	var sections []string

	label := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Original")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(max(width-4, 20)).
		Render(label + "\n" + h.input.View())
	sections = append(sections, box)

	panel := components.StatePanel{Loading: h.working}
	sections = append(sections, panel.Render(h.renderResult(width), width))

	return strings.Join(sections, "\n\n")
}

func (h *HumanizerScreen) renderResult(width int) string {
	if !h.hasResult {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("The humanized version appears here.")
	}

	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Humanized")
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(h.result)
	out := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Padding(0, 1).
		Width(max(width-4, 20)).
		Render(label + "\n" + body)

	if h.saved {
		out += "\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("✓ saved to vault")
	}
	return out
}

func (h *HumanizerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "ctrl+s", Description: "humanize"},
		{Key: "ctrl+y", Description: "copy result"},
		{Key: "ctrl+v", Description: "save"},
		{Key: "esc", Description: "back"},
	}
}
