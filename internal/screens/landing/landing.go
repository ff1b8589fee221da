package landing

import (
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

// feature is one row in the landing feature list.
type feature struct {
	icon  string
	title string
	blurb string
}

var features = []feature{
	{"💬", "Doubt Solver", "Get instant answers to your academic questions"},
	{"📝", "Quiz Generator", "Create custom quizzes on any topic"},
	{"📄", "AI Assignment Maker", "Generate structured assignments in seconds"},
	{"✨", "AI Humanizer", "Make AI text sound natural"},
	{"🔍", "Plagiarism Checker", "Check originality before you submit"},
	{"🗄", "Prompt Vault", "Every result saved and searchable"},
}

// LandingScreen is the public entry screen shown before sign in.
type LandingScreen struct {
	menu components.Menu
	auth *auth.Service
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates a LandingScreen. loginFactory and dashFactory defer screen
// construction so this package does not import its siblings.
func New(authSvc *auth.Service, loginFactory, dashFactory func() screen.Screen) *LandingScreen {
	items := []components.MenuItem{
		{Label: "GET STARTED", Description: "create an account", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: loginFactory()}
			}
		}},
		{Label: "SIGN IN", Description: "existing account", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: loginFactory()}
			}
		}},
	}
	if authSvc != nil && authSvc.Session() != nil {
		items = append([]components.MenuItem{
			{Label: "CONTINUE", Description: "pick up where you left off", Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: dashFactory()}
				}
			}},
		}, items...)
	}
	items = append(items, components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
		return tea.Quit
	}})

	return &LandingScreen{
		menu: components.NewMenu(items),
		auth: authSvc,
	}
}

func (l *LandingScreen) Title() string {
	return "Welcome"
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	var sections []string

	hero := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Your AI-Powered Study Companion")
	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Six tools for doubts, quizzes, assignments and more.")
	sections = append(sections, hero+"\n"+tagline)

	var rows []string
	for _, f := range features {
		title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(f.title)
		blurb := lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.blurb)
		rows = append(rows, f.icon+" "+title+"\n   "+blurb)
	}
	featureBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(strings.Join(rows, "\n"))
	sections = append(sections, featureBox)

	sections = append(sections, l.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "select"},
	}
}
