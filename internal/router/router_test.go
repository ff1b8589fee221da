package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/siddiq-x/AI-tutor/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "landing"}
	r := New(s1)

	s2 := &stubScreen{title: "dashboard"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("expected active 'dashboard', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "landing"}
	r := New(s1)

	s2 := &stubScreen{title: "dashboard"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "landing" {
		t.Errorf("expected active 'landing', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "landing"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "landing"}
	r := New(s1)

	s2 := &stubScreen{title: "login"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "login" {
		t.Errorf("expected active 'login', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "landing"}
	r := New(s1)

	s2 := &stubScreen{title: "dashboard"}
	r.Push(s2)

	s3 := &stubScreen{title: "vault"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "vault" {
		t.Errorf("expected active 'vault', got %q", r.Active().Title())
	}
}

func TestResetDropsStack(t *testing.T) {
	s1 := &stubScreen{title: "landing"}
	r := New(s1)
	r.Push(&stubScreen{title: "dashboard"})
	r.Push(&stubScreen{title: "quiz-generator"})

	s4 := &stubScreen{title: "landing"}
	r.Update(ResetScreenMsg{Screen: s4})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after reset, got %d", r.Depth())
	}
	if r.Active() != s4 {
		t.Error("expected reset screen to be active")
	}
	if !s4.initRan {
		t.Error("expected Init() to run via ResetScreenMsg")
	}
}
