package assignmentmaker

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/siddiq-x/AI-tutor/internal/assignment"
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
	fieldPrompt field = iota
	fieldReference
)

// generatedMsg carries finished assignment content.
type generatedMsg struct {
	prompt  string
	content assignment.Content
	archErr error
}

// savedMsg reports a vault save attempt.
type savedMsg struct{ err error }

// AssignmentScreen generates structured assignments from a prompt and an
// optional reference document.
type AssignmentScreen struct {
	generator *assignment.Generator
	archive   *assignment.Archive
	vault     *vault.Service

	prompt    components.TextArea
	reference components.TextInput
	focus     field

	refText    string
	refName    string
	generating bool
	hasResult  bool
	lastPrompt string
	content    assignment.Content
	saved      bool
	errText    string
}

var _ screen.Screen = (*AssignmentScreen)(nil)
var _ screen.AuthRequirer = (*AssignmentScreen)(nil)

// New creates an AssignmentScreen.
func New(generator *assignment.Generator, archive *assignment.Archive, vaultSvc *vault.Service) *AssignmentScreen {
	prompt := components.NewTextArea("Describe the assignment you need...", 60, 3)
	reference := components.NewTextInput("Optional: reference file (txt, pdf, doc, docx, ppt, pptx)", false, 120)
	reference.Model.Blur()

	return &AssignmentScreen{
		generator: generator,
		archive:   archive,
		vault:     vaultSvc,
		prompt:    prompt,
		reference: reference,
	}
}

func (a *AssignmentScreen) Title() string {
	return "Assignment Maker"
}

func (a *AssignmentScreen) RequiresAuth() bool {
	return true
}

func (a *AssignmentScreen) Init() tea.Cmd {
	return a.prompt.Focus()
}

func (a *AssignmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		a.generating = false
		a.hasResult = true
		a.lastPrompt = msg.prompt
		a.content = msg.content
		a.saved = false
		if msg.archErr != nil {
			return a, components.ShowToast("Archive not updated", msg.archErr.Error(), components.ToastError)
		}
		return a, nil

	case savedMsg:
		if msg.err != nil {
			return a, components.ShowToast("Save failed", msg.err.Error(), components.ToastError)
		}
		a.saved = true
		return a, components.ShowToast("Saved to vault", "", components.ToastSuccess)

	case tea.KeyPressMsg:
		if a.generating {
			return a, nil
		}
		switch msg.String() {
		case "tab":
			a.toggleFocus()
			return a, nil
		case "ctrl+s":
			return a, a.generate()
		case "ctrl+y":
			return a, a.copySection(a.content.Render(), "Full assignment")
		case "ctrl+v":
			return a, a.save()
		case "enter":
			if a.focus == fieldReference {
				a.loadReference()
				return a, nil
			}
		}
		if a.hasResult {
			switch msg.String() {
			case "alt+1":
				return a, a.copySection(a.content.Vision, "Vision statement")
			case "alt+2":
				return a, a.copySection(a.content.Mission, "Mission statement")
			case "alt+3":
				return a, a.copySection("• "+strings.Join(a.content.KeyPoints, "\n• "), "Key points")
			case "alt+4":
				return a, a.copySection(a.content.Conclusion, "Conclusion")
			}
		}
	}

	var cmd tea.Cmd
	switch a.focus {
	case fieldPrompt:
		a.prompt, cmd = a.prompt.Update(msg)
	case fieldReference:
		a.reference, cmd = a.reference.Update(msg)
	}
	return a, cmd
}

func (a *AssignmentScreen) toggleFocus() {
	if a.focus == fieldPrompt {
		a.focus = fieldReference
		a.prompt.Blur()
		a.reference.Model.Focus()
	} else {
		a.focus = fieldPrompt
		a.reference.Model.Blur()
		a.prompt.Focus()
	}
}

func (a *AssignmentScreen) loadReference() {
	path := strings.TrimSpace(a.reference.Value())
	if path == "" {
		a.refText = ""
		a.refName = ""
		a.errText = ""
		return
	}
	f, err := fileinput.Read(path)
	if err != nil {
		a.errText = err.Error()
		return
	}
	a.refText = f.Content
	a.refName = f.Name
	a.errText = ""
}

func (a *AssignmentScreen) generate() tea.Cmd {
	prompt := strings.TrimSpace(a.prompt.Value())
	if prompt == "" {
		return components.ShowToast("Prompt required", "Describe the assignment first.", components.ToastError)
	}

	a.generating = true
	a.errText = ""
	refText := a.refText
	gen := a.generator
	archive := a.archive
	return tea.Tick(gen.Delay(), func(time.Time) tea.Msg {
		content := gen.Generate(prompt, refText)
		var archErr error
		if archive != nil {
			archErr = archive.Append(context.Background(), prompt, content)
		}
		return generatedMsg{prompt: prompt, content: content, archErr: archErr}
	})
}

func (a *AssignmentScreen) copySection(text, name string) tea.Cmd {
	if !a.hasResult {
		return nil
	}
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return components.ShowToastMsg{Toast: components.Toast{
				Title: "Copy failed", Description: err.Error(), Level: components.ToastError,
			}}
		}
		return components.ShowToastMsg{Toast: components.Toast{
			Title: name + " copied", Level: components.ToastSuccess,
		}}
	}
}

func (a *AssignmentScreen) save() tea.Cmd {
	if !a.hasResult {
		return nil
	}
	if a.saved {
		return components.ShowToast("Already saved", "", components.ToastInfo)
	}
	prompt := a.lastPrompt
	response := a.content.Render()
	svc := a.vault
	return func() tea.Msg {
		_, err := svc.Save(context.Background(), vault.ToolAssignmentMaker, prompt, response)
		return savedMsg{err: err}
	}
}

func (a *AssignmentScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, a.renderForm(width))

	panel := components.StatePanel{
		Loading:   a.generating,
		Err:       a.errText,
		RetryHint: "check the file path and press enter to retry",
	}
	sections = append(sections, panel.Render(a.renderResult(width), width))

	return strings.Join(sections, "\n\n")
}

func (a *AssignmentScreen) renderForm(width int) string {
	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render(text)
	}

	refLine := a.reference.View()
	if a.refName != "" {
		refLine += "\n" + lipgloss.NewStyle().Foreground(theme.Success).
			Render("✓ using "+a.refName)
	}

	form := label("Assignment prompt", a.focus == fieldPrompt) + "\n" + a.prompt.View() +
		"\n\n" + label("Reference file", a.focus == fieldReference) + "\n" + refLine

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(max(width-4, 20)).
		Render(form)
}

func (a *AssignmentScreen) renderResult(width int) string {
	if !a.hasResult {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("The generated assignment appears here. Press alt+1 to alt+4 to copy a section.")
	}

	heading := func(s string) string {
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s)
	}
	body := func(s string) string {
		return lipgloss.NewStyle().Foreground(theme.Text).Render(s)
	}

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(a.content.Title)
	var points []string
	for _, p := range a.content.KeyPoints {
		points = append(points, "• "+p)
	}

	doc := title + "\n\n" +
		heading("Vision [alt+1]") + "\n" + body(a.content.Vision) + "\n\n" +
		heading("Mission [alt+2]") + "\n" + body(a.content.Mission) + "\n\n" +
		heading("Key Points [alt+3]") + "\n" + body(strings.Join(points, "\n")) + "\n\n" +
		heading("Conclusion [alt+4]") + "\n" + body(a.content.Conclusion)

	if a.saved {
		doc += "\n\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("✓ saved to vault")
	}
	return doc
}

func (a *AssignmentScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "ctrl+s", Description: "generate"},
		{Key: "tab", Description: "switch field"},
		{Key: "alt+1..4", Description: "copy section"},
		{Key: "ctrl+v", Description: "save"},
		{Key: "esc", Description: "back"},
	}
}
