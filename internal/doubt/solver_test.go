package doubt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/siddiq-x/AI-tutor/internal/ai"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		question string
		want     Subject
	}{
		{"How do I solve this equation?", SubjectMath},
		{"What happens when 2 objects collide?", SubjectMath}, // digit rule
		{"Explain the force of gravity", SubjectPhysics},
		{"What is a redox reaction?", SubjectChemistry},
		{"What is DNA?", SubjectBiology},
		{"Describe an animal cell", SubjectBiology},
		{"Causes of the cold war", SubjectHistory},
		{"Analyze this poem by Frost", SubjectLiterature},
		{"Tell me about philosophy", SubjectGeneral},
	}

	for _, tt := range tests {
		if got := Classify(tt.question); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.question, got, tt.want)
		}
	}
}

func TestKeyTerms(t *testing.T) {
	terms := KeyTerms("What is the photosynthesis process in plants")
	if len(terms) != 3 {
		t.Fatalf("got %d terms, want 3: %v", len(terms), terms)
	}
	if terms[0] != "photosynthesis" {
		t.Errorf("first term = %q, want photosynthesis", terms[0])
	}
	for _, term := range terms {
		if len(term) <= 3 {
			t.Errorf("term %q is too short to be a key term", term)
		}
	}
}

func TestKeyTermsSkipsStopwords(t *testing.T) {
	terms := KeyTerms("what when where which that")
	if len(terms) != 0 {
		t.Errorf("stopword-only question yielded terms: %v", terms)
	}
}

func TestAnswerIncludesSubjectSection(t *testing.T) {
	s := NewSolverWithDelay(0)

	answer := s.Answer("What is DNA?", "")
	if !strings.Contains(answer, "biology") {
		t.Error("answer does not mention the detected subject")
	}
	if !strings.Contains(answer, "Biological System") {
		t.Error("answer is missing the biology-specific template section")
	}
	if strings.Contains(answer, "Based on your notes") {
		t.Error("empty notes should not produce a notes addendum")
	}
}

func TestAnswerWithNotesAddsAddendum(t *testing.T) {
	s := NewSolverWithDelay(0)

	answer := s.Answer("Explain the force of gravity", "Chapter 4: Newton's laws and gravitation, detailed notes.")
	if !strings.Contains(answer, "Based on your notes") {
		t.Error("expected the note-aware addendum")
	}
	if !strings.Contains(answer, "Connection to Your Notes") {
		t.Error("expected the notes connection section")
	}
	if !strings.Contains(answer, "Cross-reference this with your notes") {
		t.Error("expected the notes-specific next step")
	}
}

func TestAnswerShortNotesIgnored(t *testing.T) {
	s := NewSolverWithDelay(0)

	// Ten characters or fewer of notes are treated as no notes.
	answer := s.Answer("What is DNA?", "short")
	if strings.Contains(answer, "Based on your notes") {
		t.Error("trivial notes should not trigger the addendum")
	}
}

func TestMathNextStepDiffers(t *testing.T) {
	s := NewSolverWithDelay(0)

	mathAnswer := s.Answer("How do I calculate the area?", "")
	if !strings.Contains(mathAnswer, "Practice similar problems") {
		t.Error("math answer should suggest practicing similar problems")
	}

	generalAnswer := s.Answer("Tell me about ethics", "")
	if !strings.Contains(generalAnswer, "Review related concepts") {
		t.Error("general answer should suggest reviewing related concepts")
	}
}

type stubProvider struct {
	content string
	err     error
	calls   int
}

func (p *stubProvider) Complete(_ context.Context, _ ai.Request) (*ai.Response, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &ai.Response{Content: p.content}, nil
}

func (p *stubProvider) ModelID() string { return "stub" }

func TestRespondPrefersRemoteBackend(t *testing.T) {
	s := NewSolverWithDelay(0)
	provider := &stubProvider{content: "Gravity pulls masses together."}

	got := s.Respond(context.Background(), provider, "What is gravity?", "")
	if got != "Gravity pulls masses together." {
		t.Fatalf("Respond = %q, want backend content", got)
	}
	if provider.calls != 1 {
		t.Errorf("backend called %d times, want 1", provider.calls)
	}
}

func TestRespondFallsBackOnBackendError(t *testing.T) {
	s := NewSolverWithDelay(0)
	provider := &stubProvider{err: errors.New("down")}

	got := s.Respond(context.Background(), provider, "What is DNA?", "")
	if !strings.Contains(got, "Great question about biology") {
		t.Errorf("expected local template answer, got %q", got)
	}
}

func TestRespondSkipsMockBackend(t *testing.T) {
	s := NewSolverWithDelay(0)
	mock := ai.NewMockProvider(ai.MockResponse{Content: "canned"})

	got := s.Respond(context.Background(), mock, "What is DNA?", "")
	if got == "canned" {
		t.Error("mock backend should not serve answers")
	}
	if mock.CallCount() != 0 {
		t.Errorf("mock called %d times, want 0", mock.CallCount())
	}
}
