package doubt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/siddiq-x/AI-tutor/internal/ai"
)

// DefaultDelay simulates the latency of a real inference call.
const DefaultDelay = 2 * time.Second

// Solver produces templated explanations for student questions. All output
// is generated locally; no inference happens.
type Solver struct {
	delay time.Duration
}

// NewSolver creates a Solver with the default simulated delay.
func NewSolver() *Solver {
	return &Solver{delay: DefaultDelay}
}

// NewSolverWithDelay creates a Solver with a custom delay. Tests pass 0.
func NewSolverWithDelay(d time.Duration) *Solver {
	return &Solver{delay: d}
}

// Delay returns the simulated latency before an answer appears.
func (s *Solver) Delay() time.Duration {
	return s.delay
}

// systemPrompt frames remote backend calls.
const systemPrompt = "You are a patient tutor. Answer the student's question clearly, " +
	"referencing their notes when provided."

// Respond answers the question, preferring the remote backend when one is
// configured. The mock backend and any failure fall through to the local
// template engine after the simulated delay.
func (s *Solver) Respond(ctx context.Context, provider ai.Provider, question, notes string) string {
	if provider != nil && provider.ModelID() != "mock" {
		prompt := question
		if strings.TrimSpace(notes) != "" {
			prompt += "\n\nMy notes:\n" + notes
		}
		resp, err := provider.Complete(ctx, ai.Request{
			System:   systemPrompt,
			Messages: []ai.Message{{Role: ai.RoleUser, Content: prompt}},
		})
		if err == nil && strings.TrimSpace(resp.Content) != "" {
			return resp.Content
		}
	}

	select {
	case <-ctx.Done():
	case <-time.After(s.delay):
	}
	return s.Answer(question, notes)
}

// Answer renders a multi-section explanation for the question. When notes
// contain more than trivial content (over ten characters), a note-aware
// addendum is woven in.
func (s *Solver) Answer(question, notes string) string {
	subject := Classify(question)
	terms := KeyTerms(question)
	hasNotes := len(strings.TrimSpace(notes)) > 10

	var b strings.Builder

	fmt.Fprintf(&b, "%s **Great question about %s!**\n\n", subject.Icon(), subject)
	fmt.Fprintf(&b, "**Your Question**: %q\n", question)
	if hasNotes {
		fmt.Fprintf(&b, "\n**Based on your notes**, I can see you're studying %s.\n", subject)
	}
	b.WriteString("\n**Detailed Answer**:\n\n")

	if len(terms) > 0 {
		fmt.Fprintf(&b, "🔍 **Key Terms**: %s\n\n", strings.Join(terms, ", "))
	}

	b.WriteString("**Explanation**:\n")
	b.WriteString(explanationFor(subject, question))
	b.WriteString("\n")

	if hasNotes {
		b.WriteString("\n**Connection to Your Notes**: I can see from your notes that this relates to the material you're studying. The key connection is how this concept builds upon the foundation you've already established.\n")
	}

	b.WriteString("\n**Next Steps**:\n")
	if subject == SubjectMath {
		b.WriteString("- Practice similar problems to reinforce the method\n")
	} else {
		b.WriteString("- Review related concepts to build connections\n")
	}
	if hasNotes {
		b.WriteString("- Cross-reference this with your notes for deeper understanding\n")
	} else {
		b.WriteString("- Take notes on this explanation for future reference\n")
	}
	b.WriteString("- Feel free to ask follow-up questions for clarification\n")

	b.WriteString("\n**Would you like me to elaborate on any specific part of this explanation?** 🤔")

	return b.String()
}

func explanationFor(subject Subject, question string) string {
	switch subject {
	case SubjectMath:
		framing := "This involves mathematical reasoning"
		if strings.Contains(strings.ToLower(question), "solve") {
			framing = "This appears to be a problem-solving question"
		}
		return fmt.Sprintf(`Let me break down this mathematical concept step by step:

1. **Understanding the Problem**: %s
2. **Approach**: Start by identifying what you know and what you need to find
3. **Method**: Apply the relevant mathematical principles or formulas
4. **Solution Steps**: Work through systematically, checking each step

**Example**: If we consider a similar problem, we would...`, framing)

	case SubjectPhysics:
		return `Here's how to understand this physics concept:

1. **Physical Principle**: This relates to fundamental laws of physics
2. **Real-world Application**: You can observe this in everyday situations
3. **Mathematical Relationship**: The underlying equations help us quantify this
4. **Problem-solving Strategy**: Break complex problems into simpler parts

**Key Insight**: Remember that physics connects mathematical relationships with physical reality.`

	case SubjectChemistry:
		return `Let me explain this chemistry concept:

1. **Chemical Principle**: This involves understanding molecular behavior
2. **Reaction Mechanism**: Consider how atoms and molecules interact
3. **Practical Applications**: This concept is used in real chemical processes
4. **Safety Considerations**: Always remember proper lab procedures

**Memory Tip**: Try to visualize the molecular level interactions.`

	case SubjectBiology:
		return `Here's the biological explanation:

1. **Biological System**: This relates to how living organisms function
2. **Cellular Level**: Understanding what happens at the cellular level
3. **Evolutionary Context**: How this trait or process evolved
4. **Health Implications**: Why this is important for organism survival

**Study Tip**: Connect this concept to examples you can observe in nature.`

	case SubjectHistory:
		return `Let me provide historical context:

1. **Historical Background**: Understanding the time period and circumstances
2. **Key Figures**: Important people involved in these events
3. **Cause and Effect**: How events led to consequences
4. **Historical Significance**: Why this matters in the broader historical narrative

**Analysis Tip**: Always consider multiple perspectives on historical events.`

	case SubjectLiterature:
		return `Here's the literary analysis:

1. **Literary Elements**: Consider themes, symbols, and literary devices
2. **Author's Intent**: What message was the author trying to convey?
3. **Historical Context**: How the time period influenced the work
4. **Personal Interpretation**: What does this mean to you as a reader?

**Reading Strategy**: Look for patterns and connections throughout the text.`

	default:
		return `Here's a comprehensive explanation:

1. **Core Concept**: Let me break down the fundamental idea
2. **Key Components**: The essential elements you need to understand
3. **Practical Application**: How this applies in real situations
4. **Common Challenges**: Areas where students typically struggle

**Study Approach**: Connect new information to what you already know.`
	}
}
