package doubtsolver

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/siddiq-x/AI-tutor/internal/ai"
	"github.com/siddiq-x/AI-tutor/internal/doubt"
	"github.com/siddiq-x/AI-tutor/internal/fileinput"
	"github.com/siddiq-x/AI-tutor/internal/screen"
	"github.com/siddiq-x/AI-tutor/internal/ui/components"
	"github.com/siddiq-x/AI-tutor/internal/ui/layout"
	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
	"github.com/siddiq-x/AI-tutor/internal/vault"
)

// field indexes the focusable inputs.
type field int

const (
	fieldQuestion field = iota
	fieldNotes
)

// entry is one question/answer pair in the transcript.
type entry struct {
	question string
	answer   string
	saved    bool
}

// solvedMsg carries a finished answer.
type solvedMsg struct {
	question string
	answer   string
}

// savedMsg reports a vault save attempt.
type savedMsg struct{ err error }

// DoubtSolverScreen answers academic questions with optional lecture notes
// as extra context.
type DoubtSolverScreen struct {
	solver   *doubt.Solver
	provider ai.Provider
	vault    *vault.Service

	question components.TextArea
	notes    components.TextInput
	focus    field

	transcript []entry
	notesText  string
	notesFile  string
	solving    bool
	errText    string
	scroll     int
}

var _ screen.Screen = (*DoubtSolverScreen)(nil)
var _ screen.AuthRequirer = (*DoubtSolverScreen)(nil)

// New creates a DoubtSolverScreen.
func New(solver *doubt.Solver, provider ai.Provider, vaultSvc *vault.Service) *DoubtSolverScreen {
	question := components.NewTextArea("Type your question here...", 60, 3)
	notes := components.NewTextInput("Optional: path to lecture notes (.txt)", false, 120)
	notes.Model.Blur()

	return &DoubtSolverScreen{
		solver:   solver,
		provider: provider,
		vault:    vaultSvc,
		question: question,
		notes:    notes,
	}
}

func (d *DoubtSolverScreen) Title() string {
	return "Doubt Solver"
}

func (d *DoubtSolverScreen) RequiresAuth() bool {
	return true
}

func (d *DoubtSolverScreen) Init() tea.Cmd {
	return d.question.Focus()
}

func (d *DoubtSolverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case solvedMsg:
		d.solving = false
		d.transcript = append(d.transcript, entry{question: msg.question, answer: msg.answer})
		d.scroll = 0
		return d, nil

	case savedMsg:
		if msg.err != nil {
			return d, components.ShowToast("Save failed", msg.err.Error(), components.ToastError)
		}
		if len(d.transcript) > 0 {
			d.transcript[len(d.transcript)-1].saved = true
		}
		return d, components.ShowToast("Saved to vault", "", components.ToastSuccess)

	case tea.KeyPressMsg:
		if d.solving {
			return d, nil
		}
		switch msg.String() {
		case "tab":
			d.toggleFocus()
			return d, nil
		case "ctrl+s":
			return d, d.submit()
		case "ctrl+y":
			return d, d.copyLast()
		case "ctrl+v":
			return d, d.saveLast()
		case "pgup":
			d.scroll++
			return d, nil
		case "pgdown":
			if d.scroll > 0 {
				d.scroll--
			}
			return d, nil
		case "enter":
			if d.focus == fieldNotes {
				d.loadNotes()
				return d, nil
			}
		}
	}

	var cmd tea.Cmd
	switch d.focus {
	case fieldQuestion:
		d.question, cmd = d.question.Update(msg)
	case fieldNotes:
		d.notes, cmd = d.notes.Update(msg)
	}
	return d, cmd
}

func (d *DoubtSolverScreen) toggleFocus() {
	if d.focus == fieldQuestion {
		d.focus = fieldNotes
		d.question.Blur()
		d.notes.Model.Focus()
	} else {
		d.focus = fieldQuestion
		d.notes.Model.Blur()
		d.question.Focus()
	}
}

// loadNotes reads the notes file named in the input. Only plain text is
// accepted here.
func (d *DoubtSolverScreen) loadNotes() {
	path := strings.TrimSpace(d.notes.Value())
	if path == "" {
		d.notesText = ""
		d.notesFile = ""
		d.errText = ""
		return
	}
	f, err := fileinput.ReadText(path)
	if err != nil {
		d.errText = err.Error()
		return
	}
	d.notesText = f.Content
	d.notesFile = f.Name
	d.errText = ""
}

func (d *DoubtSolverScreen) submit() tea.Cmd {
	question := strings.TrimSpace(d.question.Value())
	if question == "" {
		return components.ShowToast("Question required", "Type a question first.", components.ToastError)
	}

	d.solving = true
	d.errText = ""
	d.question.Reset()

	notes := d.notesText
	solver := d.solver
	provider := d.provider
	return func() tea.Msg {
		return solvedMsg{
			question: question,
			answer:   solver.Respond(context.Background(), provider, question, notes),
		}
	}
}

func (d *DoubtSolverScreen) copyLast() tea.Cmd {
	if len(d.transcript) == 0 {
		return nil
	}
	answer := d.transcript[len(d.transcript)-1].answer
	return func() tea.Msg {
		if err := clipboard.WriteAll(answer); err != nil {
			return components.ShowToastMsg{Toast: components.Toast{
				Title: "Copy failed", Description: err.Error(), Level: components.ToastError,
			}}
		}
		return components.ShowToastMsg{Toast: components.Toast{
			Title: "Copied to clipboard", Level: components.ToastSuccess,
		}}
	}
}

func (d *DoubtSolverScreen) saveLast() tea.Cmd {
	if len(d.transcript) == 0 {
		return nil
	}
	last := d.transcript[len(d.transcript)-1]
	if last.saved {
		return components.ShowToast("Already saved", "", components.ToastInfo)
	}
	svc := d.vault
	return func() tea.Msg {
		_, err := svc.Save(context.Background(), vault.ToolDoubtSolver, last.question, last.answer)
		return savedMsg{err: err}
	}
}

func (d *DoubtSolverScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, d.renderForm(width))

	panel := components.StatePanel{
		Loading:   d.solving,
		Err:       d.errText,
		RetryHint: "check the file path and press enter to retry",
	}
	sections = append(sections, panel.Render(d.renderTranscript(width), width))

	return strings.Join(sections, "\n\n")
}

func (d *DoubtSolverScreen) renderForm(width int) string {
	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	notesLine := d.notes.View()
	if d.notesFile != "" {
		notesLine += "\n" + lipgloss.NewStyle().Foreground(theme.Success).
			Render("✓ using notes from "+d.notesFile)
	}

	form := label("Question", d.focus == fieldQuestion) + "\n" + d.question.View() +
		"\n\n" + label("Lecture notes", d.focus == fieldNotes) + "\n" + notesLine

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(max(width-4, 20)).
		Render(form)
}

func (d *DoubtSolverScreen) renderTranscript(width int) string {
	if len(d.transcript) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Ask anything. Answers appear here.")
	}

	var blocks []string
	for _, e := range d.transcript {
		q := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("You: ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(e.question)
		a := lipgloss.NewStyle().Foreground(theme.Text).Render(e.answer)
		block := q + "\n\n" + a
		if e.saved {
			block += "\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("✓ saved")
		}
		blocks = append(blocks, block)
	}

	joined := strings.Join(blocks, "\n\n"+strings.Repeat("─", max(width-8, 10))+"\n\n")

	// Crude scrollback: drop trailing lines when scrolled up.
	if d.scroll > 0 {
		lines := strings.Split(joined, "\n")
		cut := len(lines) - d.scroll*5
		if cut < 1 {
			cut = 1
		}
		joined = strings.Join(lines[:cut], "\n")
	}
	return joined
}

func (d *DoubtSolverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "ctrl+s", Description: "solve"},
		{Key: "tab", Description: "switch field"},
		{Key: "ctrl+y", Description: "copy answer"},
		{Key: "ctrl+v", Description: "save to vault"},
		{Key: "esc", Description: "back"},
	}
}
