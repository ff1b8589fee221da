package quiz

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAnswerAlwaysAmongOptions(t *testing.T) {
	g := NewGeneratorWithDelay(0)

	topics := []string{"biology", "quantum physics", "calculus", "world war history", "organic chemistry", "philosophy"}
	for _, topic := range topics {
		for _, q := range g.Generate(topic, MaxQuestions) {
			if len(q.Options) != OptionCount {
				t.Errorf("topic %q q%d: %d options, want %d", topic, q.ID, len(q.Options), OptionCount)
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.Answer {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("topic %q q%d: answer %q not among options %v", topic, q.ID, q.Answer, q.Options)
			}
		}
	}
}

func TestGenerateCountClamped(t *testing.T) {
	g := NewGeneratorWithDelay(0)

	if n := len(g.Generate("biology", 0)); n != MinQuestions {
		t.Errorf("count 0 produced %d questions, want %d", n, MinQuestions)
	}
	if n := len(g.Generate("biology", 50)); n != MaxQuestions {
		t.Errorf("count 50 produced %d questions, want %d", n, MaxQuestions)
	}
	if n := len(g.Generate("biology", 5)); n != 5 {
		t.Errorf("count 5 produced %d questions, want 5", n)
	}
}

func TestGenerateCyclesPool(t *testing.T) {
	g := NewGeneratorWithDelay(0)

	qs := g.Generate("biology", 7)
	// Pool holds three shapes, so question 4 repeats question 1's text.
	if qs[3].Question != qs[0].Question {
		t.Errorf("q4 = %q, want repeat of q1 %q", qs[3].Question, qs[0].Question)
	}
	if qs[3].ID == qs[0].ID {
		t.Error("cycled questions must still get distinct IDs")
	}
}

func TestGenerateSubstitutesTopic(t *testing.T) {
	g := NewGeneratorWithDelay(0)

	qs := g.Generate("marine biology", 3)
	for _, q := range qs {
		if !strings.Contains(q.Question, "marine biology") {
			t.Errorf("question %q does not mention the topic", q.Question)
		}
	}
}

func TestGenerateDefaultPoolForUnknownTopic(t *testing.T) {
	g := NewGeneratorWithDelay(0)

	qs := g.Generate("interpretive dance", 3)
	if !strings.Contains(qs[0].Question, "interpretive dance") {
		t.Errorf("default pool question %q does not mention the topic", qs[0].Question)
	}
	if !strings.Contains(qs[0].Explanation, "interpretive dance") {
		t.Errorf("default pool explanation %q does not mention the topic", qs[0].Explanation)
	}
}

func TestGradeExactMatch(t *testing.T) {
	q := Question{ID: 1, Answer: "Cell", Options: []string{"Cell", "Atom", "Molecule", "Tissue"}}

	r := Grade(q, "Cell", 3*time.Second)
	if !r.IsCorrect {
		t.Error("exact match graded incorrect")
	}
	if r.TimeSpent != 3*time.Second {
		t.Errorf("TimeSpent = %v, want 3s", r.TimeSpent)
	}

	// Case-sensitive: "cell" is not "Cell".
	r = Grade(q, "cell", time.Second)
	if r.IsCorrect {
		t.Error("case-mismatched answer graded correct")
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{IsCorrect: true, TimeSpent: 2 * time.Second},
		{IsCorrect: false, TimeSpent: 4 * time.Second},
		{IsCorrect: true, TimeSpent: time.Second},
	}

	s := Summarize(results)
	if s.Total != 3 || s.Correct != 2 {
		t.Errorf("Summary = %d/%d, want 2/3", s.Correct, s.Total)
	}
	if s.TotalTime != 7*time.Second {
		t.Errorf("TotalTime = %v, want 7s", s.TotalTime)
	}
	if s.ScorePercent() != 66 {
		t.Errorf("ScorePercent = %d, want 66", s.ScorePercent())
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.ScorePercent() != 0 {
		t.Errorf("empty ScorePercent = %d, want 0", s.ScorePercent())
	}
}
