package quizgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/siddiq-x/AI-tutor/internal/quiz"
	"github.com/siddiq-x/AI-tutor/internal/screen"
	"github.com/siddiq-x/AI-tutor/internal/ui/components"
	"github.com/siddiq-x/AI-tutor/internal/ui/layout"
	"github.com/siddiq-x/AI-tutor/internal/ui/theme"
	"github.com/siddiq-x/AI-tutor/internal/vault"
)

// phase tracks quiz progress.
type phase int

const (
	phaseSetup phase = iota
	phaseGenerating
	phaseActive
	phaseFeedback
	phaseSummary
)

// generatedMsg carries freshly generated questions.
type generatedMsg struct {
	topic     string
	questions []quiz.Question
}

// savedMsg reports a vault save attempt.
type savedMsg struct{ err error }

// QuizScreen runs the full quiz flow: setup, generation, answering and the
// score summary.
type QuizScreen struct {
	generator *quiz.Generator
	vault     *vault.Service

	topic      components.TextInput
	count      components.TextInput
	focusCount bool

	phase     phase
	topicName string
	questions []quiz.Question
	idx       int
	mc        components.MultiChoice
	results   []quiz.Result
	started   time.Time
	saved     bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.AuthRequirer = (*QuizScreen)(nil)

// New creates a QuizScreen in the setup phase.
func New(generator *quiz.Generator, vaultSvc *vault.Service) *QuizScreen {
	topic := components.NewTextInput("Topic, e.g. photosynthesis", false, 80)
	count := components.NewTextInput("Questions (1-10)", true, 2)
	count.Model.Blur()

	return &QuizScreen{
		generator: generator,
		vault:     vaultSvc,
		topic:     topic,
		count:     count,
	}
}

func (q *QuizScreen) Title() string {
	return "Quiz Generator"
}

func (q *QuizScreen) RequiresAuth() bool {
	return true
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.topic.Init()
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		q.topicName = msg.topic
		q.questions = msg.questions
		q.results = nil
		q.idx = 0
		q.phase = phaseActive
		q.loadQuestion()
		return q, nil

	case savedMsg:
		if msg.err != nil {
			return q, components.ShowToast("Save failed", msg.err.Error(), components.ToastError)
		}
		q.saved = true
		return q, components.ShowToast("Saved to vault", "", components.ToastSuccess)

	case tea.KeyPressMsg:
		return q.handleKey(msg)
	}

	return q, q.updateInputs(msg)
}

func (q *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch q.phase {
	case phaseSetup:
		switch msg.String() {
		case "tab", "shift+tab":
			q.focusCount = !q.focusCount
			if q.focusCount {
				q.topic.Model.Blur()
				q.count.Model.Focus()
			} else {
				q.count.Model.Blur()
				q.topic.Model.Focus()
			}
			return q, nil
		case "enter":
			return q, q.generate()
		}
		return q, q.updateInputs(msg)

	case phaseActive:
		var cmd tea.Cmd
		q.mc, cmd = q.mc.Update(msg)
		if q.mc.Submitted {
			elapsed := time.Since(q.started)
			q.results = append(q.results, quiz.Grade(q.questions[q.idx], q.mc.ChosenOption(), elapsed))
			q.phase = phaseFeedback
		}
		return q, cmd

	case phaseFeedback:
		if msg.String() == "enter" {
			q.idx++
			if q.idx >= len(q.questions) {
				q.phase = phaseSummary
				return q, nil
			}
			q.phase = phaseActive
			q.loadQuestion()
		}
		return q, nil

	case phaseSummary:
		switch msg.String() {
		case "r":
			q.phase = phaseSetup
			q.topic.Reset()
			q.count.Reset()
			q.focusCount = false
			q.saved = false
			return q, q.topic.Model.Focus()
		case "ctrl+v":
			return q, q.save()
		}
	}

	return q, nil
}

func (q *QuizScreen) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if q.focusCount {
		q.count, cmd = q.count.Update(msg)
	} else {
		q.topic, cmd = q.topic.Update(msg)
	}
	return cmd
}

func (q *QuizScreen) generate() tea.Cmd {
	topic := strings.TrimSpace(q.topic.Value())
	if topic == "" {
		return components.ShowToast("Topic required", "Enter a topic first.", components.ToastError)
	}
	count, err := q.count.NumericValue()
	if err != nil {
		count = 5
	}

	q.phase = phaseGenerating
	gen := q.generator
	return tea.Tick(gen.Delay(), func(time.Time) tea.Msg {
		return generatedMsg{topic: topic, questions: gen.Generate(topic, count)}
	})
}

func (q *QuizScreen) loadQuestion() {
	question := q.questions[q.idx]
	correct := 0
	for i, opt := range question.Options {
		if opt == question.Answer {
			correct = i
			break
		}
	}
	q.mc = components.NewMultiChoice(question.Question, question.Options, correct)
	q.started = time.Now()
}

func (q *QuizScreen) save() tea.Cmd {
	if q.saved {
		return components.ShowToast("Already saved", "", components.ToastInfo)
	}
	summary := quiz.Summarize(q.results)
	prompt := fmt.Sprintf("Quiz on %s (%d questions)", q.topicName, summary.Total)
	response := fmt.Sprintf("Scored %d/%d (%d%%) in %s.",
		summary.Correct, summary.Total, summary.ScorePercent(), summary.TotalTime.Round(time.Second))

	svc := q.vault
	return func() tea.Msg {
		_, err := svc.Save(context.Background(), vault.ToolQuizGenerator, prompt, response)
		return savedMsg{err: err}
	}
}

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseSetup:
		return q.viewSetup(width, height)
	case phaseGenerating:
		panel := components.StatePanel{Loading: true}
		return panel.Render("", width)
	case phaseActive, phaseFeedback:
		return q.viewQuestion(width)
	default:
		return q.viewSummary(width, height)
	}
}

func (q *QuizScreen) viewSetup(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Build a custom quiz")

	form := "Topic\n" + q.topic.View() + "\n\nNumber of questions\n" + q.count.View()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(min(width-4, 50)).
		Render(form)

	content := title + "\n\n" + box
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) viewQuestion(width int) string {
	progress := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d · %s", q.idx+1, len(q.questions), q.topicName))

	body := progress + "\n\n" + q.mc.View()

	if q.phase == phaseFeedback {
		result := q.results[len(q.results)-1]
		verdict := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✓ Correct!")
		if !result.IsCorrect {
			verdict = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
				Render("✗ Incorrect. The answer is " + result.CorrectAnswer + ".")
		}
		explanation := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(q.questions[q.idx].Explanation)
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press enter to continue")
		body += "\n" + verdict + "\n" + explanation + "\n\n" + hint
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(body)
}

func (q *QuizScreen) viewSummary(width, height int) string {
	summary := quiz.Summarize(q.results)

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Quiz complete!")
	score := fmt.Sprintf("%d / %d correct (%d%%)", summary.Correct, summary.Total, summary.ScorePercent())
	took := "took " + summary.TotalTime.Round(time.Second).String()

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if summary.ScorePercent() < 50 {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	}

	var rows []string
	for i, r := range q.results {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !r.IsCorrect {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		rows = append(rows, fmt.Sprintf("%s Q%d  %s", mark, i+1, q.questions[i].Question))
	}

	content := title + "\n\n" + scoreStyle.Render(score) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(took) + "\n\n" +
		strings.Join(rows, "\n")
	if q.saved {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("✓ saved to vault")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "r", Description: "new quiz"},
			{Key: "ctrl+v", Description: "save to vault"},
			{Key: "esc", Description: "back"},
		}
	case phaseActive:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "choose"},
			{Key: "enter", Description: "answer"},
		}
	default:
		return []layout.KeyHint{
			{Key: "tab", Description: "switch field"},
			{Key: "enter", Description: "generate"},
			{Key: "esc", Description: "back"},
		}
	}
}
