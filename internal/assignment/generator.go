package assignment

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDelay simulates the latency of a real generation call.
const DefaultDelay = 2 * time.Second

// Content is the fixed five-field assignment structure. Every field is
// always populated; the generator and parser both apply fallbacks.
type Content struct {
	Title      string   `json:"title"`
	Vision     string   `json:"vision"`
	Mission    string   `json:"mission"`
	KeyPoints  []string `json:"keyPoints"`
	Conclusion string   `json:"conclusion"`
}

// Generator fills the assignment structure from template sentences.
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

// Delay returns the simulated latency before content appears.
func (g *Generator) Delay() time.Duration {
	return g.delay
}

// Generate interpolates the prompt into the five-field structure. When
// referenceText is non-empty (an uploaded file's extracted text), the vision
// is extended and an extra key point is appended.
func (g *Generator) Generate(prompt, referenceText string) Content {
	c := Content{
		Title:  fmt.Sprintf("Assignment: %s", prompt),
		Vision: fmt.Sprintf("This assignment aims to provide comprehensive understanding of %s through structured learning and practical application. Students will develop critical thinking skills while exploring key concepts and their real-world implications.", prompt),
		Mission: fmt.Sprintf("To enable students to master the fundamental principles of %s and apply them effectively in academic and professional contexts. This assignment promotes analytical thinking, research skills, and clear communication.", prompt),
		KeyPoints: []string{
			fmt.Sprintf("Understanding the core concepts and principles of %s", prompt),
			"Analyzing different perspectives and approaches to the topic",
			"Evaluating practical applications and case studies",
			"Developing critical thinking and problem-solving skills",
			"Creating well-structured arguments and presentations",
			"Connecting theoretical knowledge with real-world scenarios",
		},
		Conclusion: fmt.Sprintf("Through this assignment on %s, students will gain valuable insights and develop essential skills for their academic journey. The structured approach ensures comprehensive coverage of the topic while promoting independent learning and critical analysis. This foundation will serve students well in future coursework and professional endeavors.", prompt),
	}

	if strings.TrimSpace(referenceText) != "" {
		c.Vision += " The uploaded content provides additional context and depth to enhance the learning experience."
		c.KeyPoints = append(c.KeyPoints, "Incorporating insights from the provided reference material")
	}

	return c
}

// Render flattens the content into a copyable plain-text document.
func (c Content) Render() string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteString("\n\nVISION STATEMENT:\n")
	b.WriteString(c.Vision)
	b.WriteString("\n\nMISSION STATEMENT:\n")
	b.WriteString(c.Mission)
	b.WriteString("\n\nKEY POINTS:\n")
	for _, p := range c.KeyPoints {
		b.WriteString("• " + p + "\n")
	}
	b.WriteString("\nCONCLUSION:\n")
	b.WriteString(c.Conclusion)
	return b.String()
}
