package app

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/siddiq-x/AI-tutor/internal/ai"
	"github.com/siddiq-x/AI-tutor/internal/assignment"
	"github.com/siddiq-x/AI-tutor/internal/auth"
	"github.com/siddiq-x/AI-tutor/internal/doubt"
	"github.com/siddiq-x/AI-tutor/internal/humanize"
	"github.com/siddiq-x/AI-tutor/internal/plagiarism"
	"github.com/siddiq-x/AI-tutor/internal/quiz"
	"github.com/siddiq-x/AI-tutor/internal/router"
	"github.com/siddiq-x/AI-tutor/internal/screen"
	"github.com/siddiq-x/AI-tutor/internal/screens/assignmentmaker"
	"github.com/siddiq-x/AI-tutor/internal/screens/dashboard"
	"github.com/siddiq-x/AI-tutor/internal/screens/doubtsolver"
	"github.com/siddiq-x/AI-tutor/internal/screens/humanizer"
	"github.com/siddiq-x/AI-tutor/internal/screens/landing"
	"github.com/siddiq-x/AI-tutor/internal/screens/login"
	"github.com/siddiq-x/AI-tutor/internal/screens/plagiarismcheck"
	"github.com/siddiq-x/AI-tutor/internal/screens/quizgen"
	"github.com/siddiq-x/AI-tutor/internal/screens/vaultscreen"
	"github.com/siddiq-x/AI-tutor/internal/ui/components"
	"github.com/siddiq-x/AI-tutor/internal/ui/layout"
	"github.com/siddiq-x/AI-tutor/internal/vault"
)

// Options carries the services the screens need.
type Options struct {
	Auth        *auth.Service
	AI          ai.Provider
	Vault       *vault.Service
	Solver      *doubt.Solver
	Quizzes     *quiz.Generator
	Assignments *assignment.Generator
	Drafts      *assignment.Archive
	Rewriter    *humanize.Rewriter
	Rewrites    *humanize.Archive
	Checker     *plagiarism.Checker
	History     *plagiarism.History
}

// authChangedMsg is delivered whenever the session changes.
type authChangedMsg struct {
	session *auth.Session
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	authCh chan *auth.Session

	width  int
	height int

	toast    *components.Toast
	toastSeq int
}

// newAppModel creates an AppModel. A live session skips the landing page.
func newAppModel(opts Options) AppModel {
	f := factories(opts)

	initial := f.landing()
	if opts.Auth.Session() != nil {
		initial = f.dash()
	}

	authCh := make(chan *auth.Session, 8)
	opts.Auth.OnChange(func(sess *auth.Session) {
		select {
		case authCh <- sess:
		default:
		}
	})

	return AppModel{
		router: router.New(initial),
		opts:   opts,
		authCh: authCh,
	}
}

// screenFactories holds deferred constructors for every screen. Screens
// receive factories instead of screen values so navigation never builds
// more than it needs.
type screenFactories struct {
	landing func() screen.Screen
	login   func() screen.Screen
	dash    func() screen.Screen
}

func factories(opts Options) screenFactories {
	var f screenFactories

	tools := dashboard.Factories{
		DoubtSolver: func() screen.Screen {
			return doubtsolver.New(opts.Solver, opts.AI, opts.Vault)
		},
		QuizGenerator: func() screen.Screen {
			return quizgen.New(opts.Quizzes, opts.Vault)
		},
		AssignmentMaker: func() screen.Screen {
			return assignmentmaker.New(opts.Assignments, opts.Drafts, opts.Vault)
		},
		Humanizer: func() screen.Screen {
			return humanizer.New(opts.Rewriter, opts.Rewrites, opts.Vault)
		},
		Plagiarism: func() screen.Screen {
			return plagiarismcheck.New(opts.Checker, opts.History, opts.Vault)
		},
		Vault: func() screen.Screen {
			return vaultscreen.New(opts.Vault)
		},
		Landing: func() screen.Screen { return f.landing() },
	}

	f.dash = func() screen.Screen {
		return dashboard.New(opts.Auth, tools)
	}
	f.login = func() screen.Screen {
		return login.New(opts.Auth, f.dash)
	}
	f.landing = func() screen.Screen {
		return landing.New(opts.Auth, f.login, f.dash)
	}

	return f
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.waitForAuth(), m.activeInit())
}

func (m AppModel) activeInit() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

// navTarget returns the screen a navigation message would activate.
func navTarget(msg tea.Msg) screen.Screen {
	switch msg := msg.(type) {
	case router.PushScreenMsg:
		return msg.Screen
	case router.ReplaceScreenMsg:
		return msg.Screen
	case router.ResetScreenMsg:
		return msg.Screen
	}
	return nil
}

// waitForAuth blocks on the session channel and turns changes into messages.
func (m AppModel) waitForAuth() tea.Cmd {
	ch := m.authCh
	return func() tea.Msg {
		return authChangedMsg{session: <-ch}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case authChangedMsg:
		cmds := []tea.Cmd{m.waitForAuth()}
		// Signing out while inside a protected screen drops the whole
		// stack back to the landing page.
		if msg.session == nil {
			if active := m.router.Active(); active != nil && screen.RequiresAuth(active) {
				f := factories(m.opts)
				cmds = append(cmds, m.router.Reset(f.landing()))
			}
		}
		return m, tea.Batch(cmds...)

	case router.PushScreenMsg, router.ReplaceScreenMsg, router.ResetScreenMsg:
		// Navigating to a protected screen without a session lands on the
		// landing page instead, same as the sign-out reset.
		if target := navTarget(msg); screen.RequiresAuth(target) && m.opts.Auth.Session() == nil {
			f := factories(m.opts)
			return m, m.router.Reset(f.landing())
		}

	case components.ShowToastMsg:
		m.toastSeq++
		t := msg.Toast
		m.toast = &t
		return m, components.ExpireToast(m.toastSeq, components.DefaultToastDuration)

	case components.ToastExpiredMsg:
		if msg.Seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			active := m.router.Active()
			if active != nil && screen.ConsumesEsc(active) {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.userLabel(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)

	if m.toast != nil {
		content = overlayToast(content, m.toast.View(m.width-2), contentHeight)
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) userLabel() string {
	u := m.opts.Auth.User()
	if u == nil {
		return ""
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints := p.KeyHints()
		return append(hints, layout.KeyHint{Key: "ctrl+c", Description: "quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "esc", Description: "back"},
			{Key: "ctrl+c", Description: "quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "select"},
		{Key: "ctrl+c", Description: "quit"},
	}
}

// overlayToast pins the toast to the bottom of the content area.
func overlayToast(content, toast string, contentHeight int) string {
	keep := contentHeight - lipgloss.Height(toast)
	if keep < 0 {
		keep = 0
	}
	lines := strings.Split(content, "\n")
	if len(lines) > keep {
		lines = lines[:keep]
	}
	return strings.Join(lines, "\n") + "\n" + toast
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
