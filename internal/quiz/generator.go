package quiz

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MinQuestions and MaxQuestions bound the requested question count.
	MinQuestions = 1
	MaxQuestions = 10

	// DefaultDelay simulates the latency of a real generation call.
	DefaultDelay = 1500 * time.Millisecond
)

// questionShape is one templated question before topic substitution.
// %s slots receive the topic string.
type questionShape struct {
	question    string
	options     []string
	answerIndex int
	explanation string
}

// topicPools maps topic keyword buckets to their question shapes. Each pool
// holds three shapes; the generator cycles through them to reach the
// requested count.
var topicPools = []struct {
	keywords []string
	shapes   []questionShape
}{
	{
		keywords: []string{"biology", "life", "cell", "dna"},
		shapes: []questionShape{
			{
				question:    "What is the basic unit of life in %s?",
				options:     []string{"Cell", "Atom", "Molecule", "Tissue"},
				answerIndex: 0,
				explanation: "The cell is the fundamental unit of life and the basic building block of all living organisms.",
			},
			{
				question:    "Which process is essential for energy production in living organisms studying %s?",
				options:     []string{"Photosynthesis", "Cellular respiration", "Both A and B", "Neither A nor B"},
				answerIndex: 2,
				explanation: "Both photosynthesis and cellular respiration are crucial for energy conversion in living systems.",
			},
			{
				question:    "What carries genetic information in %s?",
				options:     []string{"DNA", "RNA", "Proteins", "All of the above"},
				answerIndex: 3,
				explanation: "DNA stores genetic information, RNA helps express it, and proteins carry out cellular functions.",
			},
		},
	},
	{
		keywords: []string{"physics", "force", "energy", "motion"},
		shapes: []questionShape{
			{
				question:    "What is Newton's first law related to %s?",
				options:     []string{"F = ma", "An object at rest stays at rest", "E = mc²", "P = mv"},
				answerIndex: 1,
				explanation: "Newton's first law states that an object at rest stays at rest and an object in motion stays in motion unless acted upon by an external force.",
			},
			{
				question:    "In %s, what is the unit of force?",
				options:     []string{"Newton", "Joule", "Watt", "Pascal"},
				answerIndex: 0,
				explanation: "The Newton (N) is the SI unit of force, named after Sir Isaac Newton.",
			},
			{
				question:    "What type of energy is associated with motion in %s?",
				options:     []string{"Potential energy", "Kinetic energy", "Thermal energy", "Chemical energy"},
				answerIndex: 1,
				explanation: "Kinetic energy is the energy possessed by an object due to its motion.",
			},
		},
	},
	{
		keywords: []string{"math", "algebra", "calculus", "geometry"},
		shapes: []questionShape{
			{
				question:    "In %s, what is the value of π (pi) approximately?",
				options:     []string{"3.14159", "2.71828", "1.41421", "1.61803"},
				answerIndex: 0,
				explanation: "Pi (π) is approximately 3.14159, representing the ratio of a circle's circumference to its diameter.",
			},
			{
				question:    "What is the derivative of x² in %s?",
				options:     []string{"2x", "x²", "2", "x"},
				answerIndex: 0,
				explanation: "Using the power rule in calculus, the derivative of x² is 2x.",
			},
			{
				question:    "In %s, what is the Pythagorean theorem?",
				options:     []string{"a² + b² = c²", "a + b = c", "a² - b² = c²", "ab = c²"},
				answerIndex: 0,
				explanation: "The Pythagorean theorem states that in a right triangle, a² + b² = c², where c is the hypotenuse.",
			},
		},
	},
	{
		keywords: []string{"history", "war", "revolution", "ancient"},
		shapes: []questionShape{
			{
				question:    "What is a primary source in %s?",
				options:     []string{"A textbook", "A firsthand account", "A Wikipedia article", "A documentary"},
				answerIndex: 1,
				explanation: "A primary source is an original document or firsthand account from the time period being studied.",
			},
			{
				question:    "Why is chronology important in studying %s?",
				options:     []string{"To understand cause and effect", "To memorize dates", "To pass exams", "To impress others"},
				answerIndex: 0,
				explanation: "Chronology helps historians understand how events influenced each other over time.",
			},
			{
				question:    "What method do historians use to verify facts about %s?",
				options:     []string{"Cross-referencing sources", "Guessing", "Using only one source", "Ignoring evidence"},
				answerIndex: 0,
				explanation: "Historians verify facts by comparing multiple reliable sources and evidence.",
			},
		},
	},
	{
		keywords: []string{"chemistry", "chemical", "atom", "molecule"},
		shapes: []questionShape{
			{
				question:    "What is the smallest unit of an element in %s?",
				options:     []string{"Atom", "Molecule", "Ion", "Compound"},
				answerIndex: 0,
				explanation: "An atom is the smallest unit of an element that retains the chemical properties of that element.",
			},
			{
				question:    "In %s, what determines an element's identity?",
				options:     []string{"Number of protons", "Number of electrons", "Number of neutrons", "Atomic mass"},
				answerIndex: 0,
				explanation: "The number of protons (atomic number) determines an element's identity and chemical properties.",
			},
			{
				question:    "What type of bond involves sharing electrons in %s?",
				options:     []string{"Ionic bond", "Covalent bond", "Metallic bond", "Hydrogen bond"},
				answerIndex: 1,
				explanation: "Covalent bonds form when atoms share electrons to achieve stable electron configurations.",
			},
		},
	},
}

// defaultShapes serve any topic that matches no bucket. Explanations
// interpolate the topic as well.
var defaultShapes = []questionShape{
	{
		question:    "What is the most effective way to learn about %s?",
		options:     []string{"Active practice and application", "Passive reading only", "Memorization without understanding", "Avoiding difficult concepts"},
		answerIndex: 0,
		explanation: "Active learning through practice and real-world application is the most effective way to master %s.",
	},
	{
		question:    "When studying %s, what should you do if you don't understand a concept?",
		options:     []string{"Skip it and move on", "Ask questions and seek help", "Memorize it anyway", "Give up completely"},
		answerIndex: 1,
		explanation: "Asking questions and seeking help when confused is crucial for deep understanding of %s.",
	},
	{
		question:    "What makes someone proficient in %s?",
		options:     []string{"Understanding fundamentals and regular practice", "Memorizing facts only", "Natural talent alone", "Avoiding challenges"},
		answerIndex: 0,
		explanation: "Proficiency in %s comes from solid foundational knowledge combined with consistent practice.",
	},
}

// Generator produces quizzes from templated pools. Stateless apart from
// its configured delay.
type Generator struct {
	delay time.Duration
}

// NewGenerator creates a Generator with the default simulated delay.
func NewGenerator() *Generator {
	return &Generator{delay: DefaultDelay}
}

// NewGeneratorWithDelay creates a Generator with a custom delay. Tests pass 0.
func NewGeneratorWithDelay(d time.Duration) *Generator {
	return &Generator{delay: d}
}

// Delay returns the simulated latency before a quiz appears.
func (g *Generator) Delay() time.Duration {
	return g.delay
}

// Generate produces count questions on the topic, cycling through the pool
// matched by topic keywords. Count is clamped to [MinQuestions, MaxQuestions].
func (g *Generator) Generate(topic string, count int) []Question {
	if count < MinQuestions {
		count = MinQuestions
	}
	if count > MaxQuestions {
		count = MaxQuestions
	}

	shapes := shapesForTopic(topic)

	questions := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		shape := shapes[i%len(shapes)]
		questions = append(questions, shape.instantiate(topic, i+1))
	}
	return questions
}

func shapesForTopic(topic string) []questionShape {
	t := strings.ToLower(topic)
	for _, pool := range topicPools {
		for _, kw := range pool.keywords {
			if strings.Contains(t, kw) {
				return pool.shapes
			}
		}
	}
	return defaultShapes
}

func (s questionShape) instantiate(topic string, id int) Question {
	options := make([]string, len(s.options))
	for i, opt := range s.options {
		options[i] = substitute(opt, topic)
	}
	return Question{
		ID:          id,
		Question:    substitute(s.question, topic),
		Options:     options,
		Answer:      options[s.answerIndex],
		Explanation: substitute(s.explanation, topic),
	}
}

func substitute(tmpl, topic string) string {
	if !strings.Contains(tmpl, "%s") {
		return tmpl
	}
	return fmt.Sprintf(tmpl, topic)
}
