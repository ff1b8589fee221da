package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/siddiq-x/AI-tutor/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// AuthRequirer is an optional interface for screens that need a signed-in
// user. The root model checks it on every session or navigation change and
// resets the stack to the landing screen when it fails.
type AuthRequirer interface {
	RequiresAuth() bool
}

// EscConsumer is an optional interface for screens that use esc themselves,
// like closing an inline form. When ConsumesEsc reports true the root model
// forwards esc to the screen instead of popping it.
type EscConsumer interface {
	ConsumesEsc() bool
}

// ConsumesEsc reports whether s wants the next esc key.
func ConsumesEsc(s Screen) bool {
	if c, ok := s.(EscConsumer); ok {
		return c.ConsumesEsc()
	}
	return false
}

// RequiresAuth reports whether s needs an authenticated session.
// Screens that don't implement AuthRequirer are public.
func RequiresAuth(s Screen) bool {
	if a, ok := s.(AuthRequirer); ok {
		return a.RequiresAuth()
	}
	return false
}
