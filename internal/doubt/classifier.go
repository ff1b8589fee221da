package doubt

import (
	"strings"
	"unicode"
)

// Subject is a coarse subject bucket detected from a question.
type Subject string

const (
	SubjectMath       Subject = "mathematics"
	SubjectPhysics    Subject = "physics"
	SubjectChemistry  Subject = "chemistry"
	SubjectBiology    Subject = "biology"
	SubjectHistory    Subject = "history"
	SubjectLiterature Subject = "literature"
	SubjectGeneral    Subject = "general"
)

// subjectKeywords maps each bucket to its trigger keywords. Order matters:
// the first bucket with a hit wins, and math additionally triggers on any
// digit in the question.
var subjectKeywords = []struct {
	subject  Subject
	keywords []string
}{
	{SubjectMath, []string{"math", "equation", "formula", "calculate"}},
	{SubjectPhysics, []string{"physics", "force", "energy", "motion"}},
	{SubjectChemistry, []string{"chemistry", "reaction", "element", "compound"}},
	{SubjectBiology, []string{"biology", "cell", "organism", "dna"}},
	{SubjectHistory, []string{"history", "war", "ancient", "century"}},
	{SubjectLiterature, []string{"english", "literature", "poem", "essay"}},
}

// subjectIcons decorate the response header per bucket.
var subjectIcons = map[Subject]string{
	SubjectMath:       "🔢",
	SubjectPhysics:    "⚡",
	SubjectChemistry:  "🧪",
	SubjectBiology:    "🧬",
	SubjectHistory:    "📜",
	SubjectLiterature: "📖",
	SubjectGeneral:    "📚",
}

// Classify detects the subject bucket for a question.
func Classify(question string) Subject {
	q := strings.ToLower(question)

	for _, bucket := range subjectKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(q, kw) {
				return bucket.subject
			}
		}
		if bucket.subject == SubjectMath && containsDigit(q) {
			return SubjectMath
		}
	}
	return SubjectGeneral
}

// Icon returns the display icon for a subject.
func (s Subject) Icon() string {
	if icon, ok := subjectIcons[s]; ok {
		return icon
	}
	return subjectIcons[SubjectGeneral]
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// stopwords excluded from key-term extraction.
var stopwords = map[string]bool{
	"what": true, "how": true, "why": true, "when": true, "where": true,
	"which": true, "that": true, "this": true, "with": true, "from": true,
	"they": true, "have": true, "been": true, "will": true, "would": true,
	"could": true, "should": true,
}

// KeyTerms extracts up to three content words (longer than three characters,
// not a stopword) from the question, in order of appearance.
func KeyTerms(question string) []string {
	var terms []string
	for _, word := range strings.Fields(question) {
		if len(word) <= 3 || stopwords[strings.ToLower(word)] {
			continue
		}
		terms = append(terms, word)
		if len(terms) == 3 {
			break
		}
	}
	return terms
}
