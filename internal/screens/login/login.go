package login

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/siddiq-x/AI-tutor/internal/auth"
	"github.com/siddiq-x/AI-tutor/internal/router"
	"github.com/siddiq-x/AI-tutor/internal/screen"
	"github.com/siddiq-x/AI-tutor/internal/ui/components"
	"github.com/siddiq-x/AI-tutor/internal/ui/layout"
	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
)

// mode selects between the sign-in and sign-up tabs.
type mode int

const (
	modeSignIn mode = iota
	modeSignUp
)

// field indexes the focusable inputs, top to bottom.
type field int

const (
	fieldName field = iota
	fieldEmail
	fieldPassword
)

// authDoneMsg carries the result of a sign-in or sign-up attempt.
type authDoneMsg struct {
	session *auth.Session
	err     error
}

// LoginScreen is the combined sign-in / sign-up form.
type LoginScreen struct {
	auth        *auth.Service
	dashFactory func() screen.Screen

	mode    mode
	focus   field
	name    components.TextInput
	email   components.TextInput
	pass    components.TextInput
	busy    bool
	errText string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates a LoginScreen.
func New(authSvc *auth.Service, dashFactory func() screen.Screen) *LoginScreen {
	name := components.NewTextInput("Your name", false, 40)
	email := components.NewTextInput("you@example.com", false, 60)
	pass := components.NewTextInput("Password", false, 60)
	pass.Model.EchoMode = textinput.EchoPassword

	name.Model.Blur()
	pass.Model.Blur()

	return &LoginScreen{
		auth:        authSvc,
		dashFactory: dashFactory,
		mode:        modeSignIn,
		focus:       fieldEmail,
		name:        name,
		email:       email,
		pass:        pass,
	}
}

func (l *LoginScreen) Title() string {
	if l.mode == modeSignUp {
		return "Create Account"
	}
	return "Sign In"
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.email.Init()
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		l.busy = false
		if msg.err != nil {
			l.errText = msg.err.Error()
			return l, nil
		}
		title := "Welcome back!"
		if l.mode == modeSignUp {
			title = "Account created"
		}
		return l, tea.Batch(
			components.ShowToast(title, msg.session.User.Email, components.ToastSuccess),
			func() tea.Msg {
				return router.ResetScreenMsg{Screen: l.dashFactory()}
			},
		)

	case tea.KeyPressMsg:
		if l.busy {
			return l, nil
		}
		switch msg.String() {
		case "tab", "down":
			l.cycleFocus(1)
			return l, nil
		case "shift+tab", "up":
			l.cycleFocus(-1)
			return l, nil
		case "ctrl+t":
			l.toggleMode()
			return l, nil
		case "enter":
			return l, l.submit()
		}
	}

	return l, l.updateFocused(msg)
}

// cycleFocus moves focus through the visible fields, wrapping around.
func (l *LoginScreen) cycleFocus(dir int) {
	fields := []field{fieldEmail, fieldPassword}
	if l.mode == modeSignUp {
		fields = []field{fieldName, fieldEmail, fieldPassword}
	}
	idx := 0
	for i, f := range fields {
		if f == l.focus {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(fields)) % len(fields)
	l.focus = fields[idx]

	l.name.Model.Blur()
	l.email.Model.Blur()
	l.pass.Model.Blur()
	switch l.focus {
	case fieldName:
		l.name.Model.Focus()
	case fieldEmail:
		l.email.Model.Focus()
	case fieldPassword:
		l.pass.Model.Focus()
	}
}

func (l *LoginScreen) toggleMode() {
	if l.mode == modeSignIn {
		l.mode = modeSignUp
	} else {
		l.mode = modeSignIn
		if l.focus == fieldName {
			l.cycleFocus(1)
		}
	}
	l.errText = ""
}

func (l *LoginScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch l.focus {
	case fieldName:
		l.name, cmd = l.name.Update(msg)
	case fieldEmail:
		l.email, cmd = l.email.Update(msg)
	case fieldPassword:
		l.pass, cmd = l.pass.Update(msg)
	}
	return cmd
}

// submit runs the auth call off the update loop. The mock backend always
// succeeds after its simulated delay, but empty fields fail fast.
func (l *LoginScreen) submit() tea.Cmd {
	email := strings.TrimSpace(l.email.Value())
	pass := l.pass.Value()
	name := strings.TrimSpace(l.name.Value())

	l.busy = true
	l.errText = ""
	signUp := l.mode == modeSignUp
	svc := l.auth

	return func() tea.Msg {
		ctx := context.Background()
		var sess *auth.Session
		var err error
		if signUp {
			sess, err = svc.SignUp(ctx, email, pass, name)
		} else {
			sess, err = svc.SignInWithPassword(ctx, email, pass)
		}
		return authDoneMsg{session: sess, err: err}
	}
}

func (l *LoginScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, l.renderTabs())

	form := []string{}
	if l.mode == modeSignUp {
		form = append(form, l.renderField("Name", l.name.View(), l.focus == fieldName))
	}
	form = append(form, l.renderField("Email", l.email.View(), l.focus == fieldEmail))
	form = append(form, l.renderField("Password", l.pass.View(), l.focus == fieldPassword))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(min(width-4, 52)).
		Render(strings.Join(form, "\n\n"))
	sections = append(sections, box)

	if l.busy {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).Italic(true).
			Render("signing in..."))
	}
	if l.errText != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("✗ "+l.errText))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LoginScreen) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(theme.TextDim)

	signIn := "Sign In"
	signUp := "Sign Up"
	if l.mode == modeSignIn {
		return active.Render(signIn) + "   " + inactive.Render(signUp)
	}
	return inactive.Render(signIn) + "   " + active.Render(signUp)
}

func (l *LoginScreen) renderField(label, input string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render(label) + "\n" + input
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "tab", Description: "next field"},
		{Key: "ctrl+t", Description: "switch tab"},
		{Key: "enter", Description: "submit"},
		{Key: "esc", Description: "back"},
	}
}
