package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
)

// MenuItem is one entry in a vertical navigation menu. Disabled items are
// skipped during navigation and never trigger their Action.
type MenuItem struct {
	Label       string
	Description string
	Action      func() tea.Cmd
	Disabled    bool
}

// Menu is a vertical navigation menu driven by up/down/enter.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, it := range items {
		if !it.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the cursor between enabled items and fires the selected
// item's Action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.seek(-1)
	case "down", "j":
		m.Selected = m.seek(1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if it := m.Items[m.Selected]; it.Action != nil && !it.Disabled {
				return m, it.Action()
			}
		}
	}
	return m, nil
}

// seek returns the index of the next enabled item in the given direction,
// or the current index if there is none.
func (m Menu) seek(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

// View renders the menu, one item per line with descriptions dimmed.
func (m Menu) View() string {
	var b strings.Builder
	for i, it := range m.Items {
		if i == m.Selected {
			b.WriteString(theme.Em.Render("  ▸ " + it.Label))
		} else {
			b.WriteString(theme.Plain.Render("    " + it.Label))
		}
		if it.Description != "" {
			b.WriteString("  " + theme.Dim.Render(it.Description))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
