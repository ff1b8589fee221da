package dashboard

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/siddiq-x/AI-tutor/internal/auth"
	"github.com/siddiq-x/AI-tutor/internal/router"
	"github.com/siddiq-x/AI-tutor/internal/screen"
	"github.com/siddiq-x/AI-tutor/internal/ui/components"
	"github.com/siddiq-x/AI-tutor/internal/ui/layout"
	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
)

// Factories defers construction of the tool screens so the dashboard does
// not import every screen package.
type Factories struct {
	DoubtSolver     func() screen.Screen
	QuizGenerator   func() screen.Screen
	AssignmentMaker func() screen.Screen
	Humanizer       func() screen.Screen
	Plagiarism      func() screen.Screen
	Vault           func() screen.Screen
	Landing         func() screen.Screen
}

// signedOutMsg reports a completed sign-out.
type signedOutMsg struct{ err error }

// DashboardScreen is the signed-in hub listing the six tools.
type DashboardScreen struct {
	menu      components.Menu
	auth      *auth.Service
	factories Factories
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.AuthRequirer = (*DashboardScreen)(nil)

// New creates a DashboardScreen.
func New(authSvc *auth.Service, f Factories) *DashboardScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factory()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "💬 DOUBT SOLVER", Description: "Get instant answers to your academic questions", Action: push(f.DoubtSolver)},
		{Label: "📝 QUIZ GENERATOR", Description: "Create custom quizzes on any topic", Action: push(f.QuizGenerator)},
		{Label: "📄 ASSIGNMENT MAKER", Description: "Generate structured assignments in seconds", Action: push(f.AssignmentMaker)},
		{Label: "✨ AI HUMANIZER", Description: "Make AI text sound natural", Action: push(f.Humanizer)},
		{Label: "🔍 PLAGIARISM CHECKER", Description: "Check originality before you submit", Action: push(f.Plagiarism)},
		{Label: "🗄 PROMPT VAULT", Description: "Browse and search your saved results", Action: push(f.Vault)},
	}

	return &DashboardScreen{
		menu:      components.NewMenu(items),
		auth:      authSvc,
		factories: f,
	}
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) RequiresAuth() bool {
	return true
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case signedOutMsg:
		if msg.err != nil {
			return d, components.ShowToast("Sign out failed", msg.err.Error(), components.ToastError)
		}
		return d, tea.Batch(
			components.ShowToast("Signed out", "", components.ToastInfo),
			func() tea.Msg {
				return router.ResetScreenMsg{Screen: d.factories.Landing()}
			},
		)

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+o" {
			svc := d.auth
			return d, func() tea.Msg {
				return signedOutMsg{err: svc.SignOut(context.Background())}
			}
		}
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	var sections []string

	greeting := "Welcome back"
	if u := d.auth.User(); u != nil {
		name := u.DisplayName
		if name == "" {
			name = u.Email
		}
		greeting = "Welcome back, " + name
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(greeting))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Pick a tool to get started."))

	sections = append(sections, d.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "open"},
		{Key: "ctrl+o", Description: "sign out"},
	}
}
