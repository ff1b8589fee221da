package humanize

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// DefaultDelay simulates the latency of a real rewriting call.
const DefaultDelay = 2500 * time.Millisecond

// Rand is the random source behind the probabilistic rewrites. Injectable
// so tests can supply a fixed sequence and assert exact output.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// replacement is one formal→casual substitution. Applied in order,
// case-insensitively, on every occurrence.
type replacement struct {
	formal string
	casual string
	re     *regexp.Regexp
}

func newReplacement(formal, casual string) replacement {
	return replacement{
		formal: formal,
		casual: casual,
		re:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(formal)),
	}
}

// replacements is the fixed phrase table. These substitutions are
// deterministic: identical input always produces identical results here.
var replacements = []replacement{
	newReplacement("In conclusion", "So basically"),
	newReplacement("Furthermore", "Plus"),
	newReplacement("Additionally", "Also"),
	newReplacement("Therefore", "So"),
	newReplacement("However", "But"),
	newReplacement("Nevertheless", "Still"),
	newReplacement("Subsequently", "Then"),
	newReplacement("Consequently", "As a result"),
	newReplacement("It is important to note", "Worth mentioning"),
	newReplacement("It should be emphasized", "The key thing is"),
}

// openers may be prepended to the first sentence, chosen at random.
var openers = []string{
	"You know, ",
	"Here's the thing - ",
	"Let me tell you, ",
	"Actually, ",
	"Honestly, ",
}

// connectors may replace a plain sentence boundary, chosen at random.
var connectors = []string{". And ", ". But ", ". Plus, "}

var sentenceBoundaryRe = regexp.MustCompile(`\. `)

// Rewriter turns formal prose into a casual register. The phrase table is
// deterministic; opener insertion and connector variation are probabilistic,
// so output for the same input differs across runs.
type Rewriter struct {
	rng   Rand
	delay time.Duration
}

// NewRewriter creates a Rewriter with a seeded random source.
func NewRewriter() *Rewriter {
	return &Rewriter{
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		delay: DefaultDelay,
	}
}

// NewRewriterWithRand creates a Rewriter with an injected random source
// and no delay. Used by tests.
func NewRewriterWithRand(rng Rand) *Rewriter {
	return &Rewriter{rng: rng}
}

// Delay returns the simulated latency before output appears.
func (r *Rewriter) Delay() time.Duration {
	return r.delay
}

// Rewrite applies the phrase table, then the probabilistic flourishes.
func (r *Rewriter) Rewrite(text string) string {
	out := text
	for _, rep := range replacements {
		out = rep.re.ReplaceAllString(out, rep.casual)
	}

	out = r.maybePrependOpener(out)
	out = r.varyConnectors(out)
	return out
}

// maybePrependOpener occasionally starts multi-sentence text with a
// conversational opener, lowercasing the original first letter.
func (r *Rewriter) maybePrependOpener(text string) string {
	sentences := strings.SplitN(text, ". ", 2)
	if len(sentences) < 2 {
		return text
	}
	if r.rng.Float64() <= 0.7 {
		return text
	}

	opener := openers[r.rng.IntN(len(openers))]
	first := lowerFirst(sentences[0])
	return opener + first + ". " + sentences[1]
}

// varyConnectors occasionally swaps a sentence boundary for a casual
// connector.
func (r *Rewriter) varyConnectors(text string) string {
	return sentenceBoundaryRe.ReplaceAllStringFunc(text, func(match string) string {
		if r.rng.Float64() > 0.8 {
			return connectors[r.rng.IntN(len(connectors))]
		}
		return match
	})
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
