package vaultscreen

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/siddiq-x/AI-tutor/internal/screen"
	"github.com/siddiq-x/AI-tutor/internal/store"
	"github.com/siddiq-x/AI-tutor/internal/ui/components"
	"github.com/siddiq-x/AI-tutor/internal/ui/layout"
	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
	"github.com/siddiq-x/AI-tutor/internal/vault"
)

// mode selects between browsing and the manual add form.
type mode int

const (
	modeBrowse mode = iota
	modeAdd
)

// addField indexes the add-form inputs.
type addField int

const (
	addFieldTool addField = iota
	addFieldPrompt
	addFieldResponse
)

// toolFilters is the filter cycle: empty means all tools.
var toolFilters = []string{
	"",
	vault.ToolDoubtSolver,
	vault.ToolQuizGenerator,
	vault.ToolAssignmentMaker,
	vault.ToolHumanizer,
	vault.ToolPlagiarism,
	vault.ToolManualEntry,
}

// addTools is the picker for the add form. Manual Entry leads because
// that is what hand-typed items are.
var addTools = []string{
	vault.ToolManualEntry,
	vault.ToolDoubtSolver,
	vault.ToolQuizGenerator,
	vault.ToolAssignmentMaker,
	vault.ToolHumanizer,
	vault.ToolPlagiarism,
}

// itemsMsg carries a reloaded item list.
type itemsMsg struct {
	items []store.VaultItem
	stats vault.Stats
	err   error
}

// deletedMsg reports a delete attempt.
type deletedMsg struct {
	ok  bool
	err error
}

// addedMsg reports a manual add attempt.
type addedMsg struct{ err error }

// VaultScreen browses, searches and edits the prompt vault.
type VaultScreen struct {
	vault *vault.Service

	mode      mode
	search    components.TextInput
	lastQuery string
	filterIdx int
	items     []store.VaultItem
	stats     vault.Stats
	selected  int
	expanded  bool
	errText   string

	addToolIdx  int
	addPrompt   components.TextInput
	addResponse components.TextArea
	addFocus    addField
}

var _ screen.Screen = (*VaultScreen)(nil)
var _ screen.AuthRequirer = (*VaultScreen)(nil)
var _ screen.EscConsumer = (*VaultScreen)(nil)

// ConsumesEsc keeps esc inside the screen while the add form is open.
func (v *VaultScreen) ConsumesEsc() bool {
	return v.mode == modeAdd
}

// New creates a VaultScreen.
func New(vaultSvc *vault.Service) *VaultScreen {
	search := components.NewTextInput("Search prompts and responses...", false, 120)

	addPrompt := components.NewTextInput("Prompt", false, 200)
	addPrompt.Model.Blur()
	addResponse := components.NewTextArea("Response", 60, 3)

	return &VaultScreen{
		vault:       vaultSvc,
		search:      search,
		addPrompt:   addPrompt,
		addResponse: addResponse,
	}
}

func (v *VaultScreen) Title() string {
	return "Prompt Vault"
}

func (v *VaultScreen) RequiresAuth() bool {
	return true
}

func (v *VaultScreen) Init() tea.Cmd {
	return tea.Batch(v.search.Init(), v.reload())
}

// reload re-runs the current search against the repository.
func (v *VaultScreen) reload() tea.Cmd {
	svc := v.vault
	query := v.search.Value()
	filter := toolFilters[v.filterIdx]
	return func() tea.Msg {
		items, err := svc.Search(context.Background(), query, filter)
		if err != nil {
			return itemsMsg{err: err}
		}
		stats, err := svc.StatsFor(context.Background(), items)
		if err != nil {
			return itemsMsg{err: err}
		}
		return itemsMsg{items: items, stats: stats}
	}
}

func (v *VaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsMsg:
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.errText = ""
		v.items = msg.items
		v.stats = msg.stats
		if v.selected >= len(v.items) {
			v.selected = max(len(v.items)-1, 0)
		}
		return v, nil

	case deletedMsg:
		if msg.err != nil {
			return v, components.ShowToast("Delete failed", msg.err.Error(), components.ToastError)
		}
		if !msg.ok {
			return v, v.reload()
		}
		return v, tea.Batch(
			components.ShowToast("Item deleted", "", components.ToastInfo),
			v.reload(),
		)

	case addedMsg:
		if msg.err != nil {
			return v, components.ShowToast("Add failed", msg.err.Error(), components.ToastError)
		}
		v.mode = modeBrowse
		v.resetAddForm()
		return v, tea.Batch(
			components.ShowToast("Item added", "", components.ToastSuccess),
			v.reload(),
		)

	case tea.KeyPressMsg:
		if v.mode == modeAdd {
			return v.updateAdd(msg)
		}
		return v.updateBrowse(msg)
	}

	return v, v.passToFocused(msg)
}

func (v *VaultScreen) updateBrowse(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil
	case "down":
		if v.selected < len(v.items)-1 {
			v.selected++
		}
		return v, nil
	case "enter":
		v.expanded = !v.expanded
		return v, nil
	case "ctrl+f":
		v.filterIdx = (v.filterIdx + 1) % len(toolFilters)
		return v, v.reload()
	case "ctrl+d":
		return v, v.deleteSelected()
	case "ctrl+y":
		return v, v.copySelected()
	case "ctrl+n":
		v.mode = modeAdd
		v.addFocus = addFieldTool
		v.search.Model.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if v.search.Value() != v.lastQuery {
		v.lastQuery = v.search.Value()
		return v, tea.Batch(cmd, v.reload())
	}
	return v, cmd
}

func (v *VaultScreen) updateAdd(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = modeBrowse
		v.resetAddForm()
		return v, v.search.Model.Focus()
	case "tab":
		v.cycleAddFocus(1)
		return v, nil
	case "shift+tab":
		v.cycleAddFocus(-1)
		return v, nil
	case "ctrl+s":
		return v, v.submitAdd()
	}

	if v.addFocus == addFieldTool {
		switch msg.String() {
		case "left":
			v.addToolIdx = (v.addToolIdx + len(addTools) - 1) % len(addTools)
		case "right":
			v.addToolIdx = (v.addToolIdx + 1) % len(addTools)
		}
		return v, nil
	}

	return v, v.passToFocused(msg)
}

func (v *VaultScreen) cycleAddFocus(dir int) {
	v.addFocus = addField((int(v.addFocus) + dir + 3) % 3)
	v.addPrompt.Model.Blur()
	v.addResponse.Blur()
	switch v.addFocus {
	case addFieldPrompt:
		v.addPrompt.Model.Focus()
	case addFieldResponse:
		v.addResponse.Focus()
	}
}

func (v *VaultScreen) passToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if v.mode == modeAdd {
		switch v.addFocus {
		case addFieldPrompt:
			v.addPrompt, cmd = v.addPrompt.Update(msg)
		case addFieldResponse:
			v.addResponse, cmd = v.addResponse.Update(msg)
		}
		return cmd
	}
	v.search, cmd = v.search.Update(msg)
	return cmd
}

func (v *VaultScreen) resetAddForm() {
	v.addToolIdx = 0
	v.addPrompt.Reset()
	v.addResponse.Reset()
	v.addPrompt.Model.Blur()
	v.addResponse.Blur()
}

func (v *VaultScreen) deleteSelected() tea.Cmd {
	if len(v.items) == 0 {
		return nil
	}
	id := v.items[v.selected].ID
	svc := v.vault
	return func() tea.Msg {
		ok, err := svc.Delete(context.Background(), id)
		return deletedMsg{ok: ok, err: err}
	}
}

func (v *VaultScreen) copySelected() tea.Cmd {
	if len(v.items) == 0 {
		return nil
	}
	response := v.items[v.selected].Response
	return func() tea.Msg {
		if err := clipboard.WriteAll(response); err != nil {
			return components.ShowToastMsg{Toast: components.Toast{
				Title: "Copy failed", Description: err.Error(), Level: components.ToastError,
			}}
		}
		return components.ShowToastMsg{Toast: components.Toast{
			Title: "Response copied", Level: components.ToastSuccess,
		}}
	}
}

func (v *VaultScreen) submitAdd() tea.Cmd {
	prompt := strings.TrimSpace(v.addPrompt.Value())
	response := strings.TrimSpace(v.addResponse.Value())
	if prompt == "" || response == "" {
		return components.ShowToast("Missing fields", "Prompt and response are both required.", components.ToastError)
	}
	tool := addTools[v.addToolIdx]
	svc := v.vault
	return func() tea.Msg {
		_, err := svc.Save(context.Background(), tool, prompt, response)
		return addedMsg{err: err}
	}
}

func (v *VaultScreen) View(width, height int) string {
	if v.mode == modeAdd {
		return v.viewAdd(width, height)
	}
	return v.viewBrowse(width, height)
}

func (v *VaultScreen) viewBrowse(width, height int) string {
	var sections []string

	filter := toolFilters[v.filterIdx]
	filterLabel := "All tools"
	if filter != "" {
		filterLabel = filter
	}
	statsLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d items · %d tools · showing %d · filter: %s",
			v.stats.Total, v.stats.Tools, v.stats.Filtered, filterLabel))

	sections = append(sections, v.search.View()+"\n"+statsLine)

	panel := components.StatePanel{Err: v.errText}
	sections = append(sections, panel.Render(v.renderItems(width, height), width))

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(sections, "\n\n"))
}

func (v *VaultScreen) renderItems(width, height int) string {
	if len(v.items) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Nothing here yet. Results you save from any tool land in the vault.")
	}

	// Rough cap so long vaults don't overflow the content area.
	maxRows := max((height-8)/3, 3)
	start := 0
	if v.selected >= maxRows {
		start = v.selected - maxRows + 1
	}

	var rows []string
	for i := start; i < len(v.items) && i < start+maxRows; i++ {
		it := v.items[i]
		toolStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
		dateStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

		head := toolStyle.Render(it.Tool) + "  " + dateStyle.Render(it.CreatedAt.Format("Jan 2, 2006 3:04 PM"))
		prompt := it.Prompt
		if !v.expanded || i != v.selected {
			prompt = truncate(prompt, max(width-10, 20))
		}

		row := head + "\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(prompt)
		if v.expanded && i == v.selected {
			row += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(it.Response)
		}

		if i == v.selected {
			row = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Primary).
				Padding(0, 1).
				Render(row)
		} else {
			row = lipgloss.NewStyle().Padding(0, 2).Render(row)
		}
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

func (v *VaultScreen) viewAdd(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Add vault item")

	toolLabel := addTools[v.addToolIdx]
	toolStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if v.addFocus == addFieldTool {
		toolStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	toolLine := toolStyle.Render("◂ " + toolLabel + " ▸")

	form := "Tool\n" + toolLine +
		"\n\nPrompt\n" + v.addPrompt.View() +
		"\n\nResponse\n" + v.addResponse.View()

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(min(width-4, 64)).
		Render(form)

	content := title + "\n\n" + box
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// truncate shortens to n runes so multi-byte characters never split.
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

func (v *VaultScreen) KeyHints() []layout.KeyHint {
	if v.mode == modeAdd {
		return []layout.KeyHint{
			{Key: "tab", Description: "next field"},
			{Key: "◂/▸", Description: "tool"},
			{Key: "ctrl+s", Description: "add"},
			{Key: "esc", Description: "cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "select"},
		{Key: "enter", Description: "expand"},
		{Key: "ctrl+f", Description: "filter"},
		{Key: "ctrl+n", Description: "add"},
		{Key: "ctrl+d", Description: "delete"},
		{Key: "esc", Description: "back"},
	}
}
