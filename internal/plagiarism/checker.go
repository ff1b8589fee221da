package plagiarism

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultDelay simulates the latency of a real similarity scan.
const DefaultDelay = 3 * time.Second

// RiskLevel classifies a similarity percentage.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Risk thresholds: ≤15 low, ≤40 medium, else high.
const (
	lowThreshold    = 15
	mediumThreshold = 40
)

// maxDemoPercent bounds the fabricated similarity score. Demo scores stay
// in [0, 35) so results skew low/medium.
const maxDemoPercent = 35

// Result is one plagiarism analysis.
type Result struct {
	Percentage  int       `json:"percentage"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	Explanation string    `json:"explanation"`
	CheckedAt   time.Time `json:"checked_at"`
}

// explanations holds the fixed template per risk level.
var explanations = map[RiskLevel]string{
	RiskLow:    "The content appears to be largely original with minimal similarities to existing sources. Any matches found are likely common phrases or properly cited references.",
	RiskMedium: "The content shows moderate similarities to existing sources. Some sections may require citation or rephrasing to ensure originality.",
	RiskHigh:   "The content shows significant similarities to existing sources. Substantial revision and proper citation are recommended to avoid plagiarism concerns.",
}

// Rand is the injectable random source for fabricated scores.
type Rand interface {
	IntN(n int) int
}

// Checker fabricates similarity analyses. No real comparison happens.
type Checker struct {
	rng   Rand
	now   func() time.Time
	delay time.Duration
}

// NewChecker creates a Checker with a seeded random source.
func NewChecker() *Checker {
	return &Checker{
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:   time.Now,
		delay: DefaultDelay,
	}
}

// NewCheckerWithRand creates a Checker with an injected random source and
// clock, and no delay. Used by tests.
func NewCheckerWithRand(rng Rand, now func() time.Time) *Checker {
	return &Checker{rng: rng, now: now}
}

// Delay returns the simulated latency before a result appears.
func (c *Checker) Delay() time.Duration {
	return c.delay
}

// Check fabricates a similarity result for the content. The content itself
// does not influence the score; only its presence is validated by callers.
func (c *Checker) Check(_ string) Result {
	pct := c.rng.IntN(maxDemoPercent)
	level := Classify(pct)
	return Result{
		Percentage:  pct,
		RiskLevel:   level,
		Explanation: explanations[level],
		CheckedAt:   c.now(),
	}
}

// Classify maps a percentage to its risk level.
func Classify(percentage int) RiskLevel {
	switch {
	case percentage <= lowThreshold:
		return RiskLow
	case percentage <= mediumThreshold:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// RenderReport flattens a result into a copyable report document.
func (r Result) RenderReport() string {
	return fmt.Sprintf(
		"Plagiarism Check Report\n\nSimilarity: %d%%\nRisk Level: %s\n\nAnalysis:\n%s\n\nChecked on: %s",
		r.Percentage, r.RiskLevel, r.Explanation, r.CheckedAt.Format("Jan 2, 2006 3:04 PM"))
}
