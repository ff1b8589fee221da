package plagiarismcheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/siddiq-x/AI-tutor/internal/plagiarism"
	"github.com/siddiq-x/AI-tutor/internal/screen"
	"github.com/siddiq-x/AI-tutor/internal/ui/components"
	"github.com/siddiq-x/AI-tutor/internal/ui/layout"
	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
	"github.com/siddiq-x/AI-tutor/internal/vault"
)

// checkedMsg carries a finished analysis.
type checkedMsg struct {
	content string
	result  plagiarism.Result
	histErr error
}

// savedMsg reports a vault save attempt.
type savedMsg struct{ err error }

// PlagiarismScreen runs similarity checks on pasted content.
type PlagiarismScreen struct {
	checker *plagiarism.Checker
	history *plagiarism.History
	vault   *vault.Service

	input components.TextArea

	checking  bool
	hasResult bool
	content   string
	result    plagiarism.Result
	saved     bool
}

var _ screen.Screen = (*PlagiarismScreen)(nil)
var _ screen.AuthRequirer = (*PlagiarismScreen)(nil)

// New creates a PlagiarismScreen.
func New(checker *plagiarism.Checker, history *plagiarism.History, vaultSvc *vault.Service) *PlagiarismScreen {
	return &PlagiarismScreen{
		checker: checker,
		history: history,
		vault:   vaultSvc,
		input:   components.NewTextArea("Paste the content to check...", 60, 5),
	}
}

func (p *PlagiarismScreen) Title() string {
	return "Plagiarism Checker"
}

func (p *PlagiarismScreen) RequiresAuth() bool {
	return true
}

func (p *PlagiarismScreen) Init() tea.Cmd {
	return p.input.Focus()
}

func (p *PlagiarismScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case checkedMsg:
		p.checking = false
		p.hasResult = true
		p.content = msg.content
		p.result = msg.result
		p.saved = false
		if msg.histErr != nil {
			return p, components.ShowToast("History not updated", msg.histErr.Error(), components.ToastError)
		}
		return p, nil

	case savedMsg:
		if msg.err != nil {
			return p, components.ShowToast("Save failed", msg.err.Error(), components.ToastError)
		}
		p.saved = true
		return p, components.ShowToast("Saved to vault", "", components.ToastSuccess)

	case tea.KeyPressMsg:
		if p.checking {
			return p, nil
		}
		switch msg.String() {
		case "ctrl+s":
			return p, p.check()
		case "ctrl+y":
			return p, p.copyReport()
		case "ctrl+v":
			return p, p.save()
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PlagiarismScreen) check() tea.Cmd {
	content := strings.TrimSpace(p.input.Value())
	if content == "" {
		return components.ShowToast("Content required", "Paste something to check first.", components.ToastError)
	}

	p.checking = true
	checker := p.checker
	history := p.history
	return tea.Tick(checker.Delay(), func(time.Time) tea.Msg {
		result := checker.Check(content)
		var histErr error
		if history != nil {
			histErr = history.Append(context.Background(), result, content)
		}
		return checkedMsg{content: content, result: result, histErr: histErr}
	})
}

func (p *PlagiarismScreen) copyReport() tea.Cmd {
	if !p.hasResult {
		return nil
	}
	report := p.result.RenderReport()
	return func() tea.Msg {
		if err := clipboard.WriteAll(report); err != nil {
			return components.ShowToastMsg{Toast: components.Toast{
				Title: "Copy failed", Description: err.Error(), Level: components.ToastError,
			}}
		}
		return components.ShowToastMsg{Toast: components.Toast{
			Title: "Report copied", Level: components.ToastSuccess,
		}}
	}
}

func (p *PlagiarismScreen) save() tea.Cmd {
	if !p.hasResult {
		return nil
	}
	if p.saved {
		return components.ShowToast("Already saved", "", components.ToastInfo)
	}
	content := p.content
	report := p.result.RenderReport()
	svc := p.vault
	return func() tea.Msg {
		_, err := svc.Save(context.Background(), vault.ToolPlagiarism, content, report)
		return savedMsg{err: err}
	}
}

func (p *PlagiarismScreen) View(width, height int) string {
	var sections []string

	label := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Content")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(max(width-4, 20)).
		Render(label + "\n" + p.input.View())
	sections = append(sections, box)

	panel := components.StatePanel{Loading: p.checking}
	sections = append(sections, panel.Render(p.renderResult(width), width))

	return strings.Join(sections, "\n\n")
}

func (p *PlagiarismScreen) renderResult(width int) string {
	if !p.hasResult {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("The similarity report appears here.")
	}

	risk := string(p.result.RiskLevel)
	color := theme.RiskColor(risk)

	barWidth := min(width-20, 40)
	bar := components.NewProgressBar(
		fmt.Sprintf("Similarity %d%%", p.result.Percentage),
		float64(p.result.Percentage)/100,
		false,
		barWidth,
	)
	bar.Fill = color

	riskLine := lipgloss.NewStyle().Foreground(color).Bold(true).
		Render(strings.ToUpper(risk) + " RISK")
	explanation := lipgloss.NewStyle().Foreground(theme.Text).
		Width(max(width-8, 20)).
		Render(p.result.Explanation)

	out := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(bar.View() + "\n" + riskLine + "\n\n" + explanation)

	if p.saved {
		out += "\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("✓ saved to vault")
	}
	return out
}

func (p *PlagiarismScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "ctrl+s", Description: "check"},
		{Key: "ctrl+y", Description: "copy report"},
		{Key: "ctrl+v", Description: "save"},
		{Key: "esc", Description: "back"},
	}
}
