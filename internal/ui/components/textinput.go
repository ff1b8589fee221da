package components

import (
	"strconv"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with app styling, an optional
// digits-only filter and a pass/fail marker shown after validation.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool

	submitted bool
	valid     bool
}

// NewTextInput creates a focused single-line input. maxLen > 0 caps the
// value length.
func NewTextInput(placeholder string, numericOnly bool, maxLen int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Focus()
	if maxLen > 0 {
		m.CharLimit = maxLen
	}
	return TextInput{Model: m, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the wrapped model, swallowing non-digit
// character keys when the input is numeric-only.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && t.NumericOnly && isNonDigitChar(kmsg.String()) {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func isNonDigitChar(key string) bool {
	runes := []rune(key)
	return len(runes) == 1 && !unicode.IsDigit(runes[0])
}

// View renders the input, appending a ✓ or ✗ once Submit has been called.
func (t TextInput) View() string {
	s := t.Model.View()
	switch {
	case t.submitted && t.valid:
		s += " " + theme.Good.Render("✓")
	case t.submitted:
		s += " " + theme.Bad.Render("✗")
	}
	return s
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit records a validation result to display next to the input.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and any validation marker.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}
