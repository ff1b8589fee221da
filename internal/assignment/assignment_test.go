package assignment

import (
	"strings"
	"testing"
)

func TestGenerateAllFieldsPopulated(t *testing.T) {
	g := NewGeneratorWithDelay(0)

	c := g.Generate("climate change", "")
	if c.Title == "" || c.Vision == "" || c.Mission == "" || c.Conclusion == "" {
		t.Fatal("generated content has empty fields")
	}
	if len(c.KeyPoints) != 6 {
		t.Errorf("got %d key points, want 6", len(c.KeyPoints))
	}
	if !strings.Contains(c.Title, "climate change") {
		t.Errorf("Title %q does not mention the prompt", c.Title)
	}
	if !strings.Contains(c.Vision, "climate change") {
		t.Error("Vision does not mention the prompt")
	}
}

func TestGenerateWithReferenceExtendsContent(t *testing.T) {
	g := NewGeneratorWithDelay(0)

	plain := g.Generate("renewable energy", "")
	withRef := g.Generate("renewable energy", "[Extracted content from notes.pdf]")

	if len(withRef.KeyPoints) != len(plain.KeyPoints)+1 {
		t.Errorf("reference file should append exactly one key point: %d vs %d",
			len(withRef.KeyPoints), len(plain.KeyPoints))
	}
	if !strings.Contains(withRef.Vision, "uploaded content") {
		t.Error("reference file should extend the vision text")
	}
	if strings.Contains(plain.Vision, "uploaded content") {
		t.Error("vision extension leaked into the no-reference path")
	}
}

func TestRenderContainsAllSections(t *testing.T) {
	g := NewGeneratorWithDelay(0)
	doc := g.Generate("biology", "").Render()

	for _, section := range []string{"VISION STATEMENT:", "MISSION STATEMENT:", "KEY POINTS:", "CONCLUSION:"} {
		if !strings.Contains(doc, section) {
			t.Errorf("rendered document missing %q", section)
		}
	}
}

func TestParseJSON(t *testing.T) {
	c := Parse(`Here is your assignment: {"title":"T","vision":"V","mission":"M","keyPoints":["a","b"],"conclusion":"C"}`)

	if c.Title != "T" || c.Vision != "V" || c.Mission != "M" || c.Conclusion != "C" {
		t.Errorf("parsed JSON fields wrong: %+v", c)
	}
	if len(c.KeyPoints) != 2 || c.KeyPoints[0] != "a" {
		t.Errorf("parsed key points = %v, want [a b]", c.KeyPoints)
	}
}

func TestParseStructuredText(t *testing.T) {
	c := Parse(`Title: Photosynthesis Deep Dive
Vision: Understand how plants convert light.
Mission: Build lab skills.
Key Points:
- Light reactions
- Calvin cycle
* Chlorophyll structure
Conclusion: Plants are neat.`)

	if c.Title != "Photosynthesis Deep Dive" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Vision != "Understand how plants convert light." {
		t.Errorf("Vision = %q", c.Vision)
	}
	if len(c.KeyPoints) != 3 {
		t.Fatalf("got %d key points, want 3: %v", len(c.KeyPoints), c.KeyPoints)
	}
	if c.KeyPoints[2] != "Chlorophyll structure" {
		t.Errorf("KeyPoints[2] = %q", c.KeyPoints[2])
	}
	if c.Conclusion != "Plants are neat." {
		t.Errorf("Conclusion = %q", c.Conclusion)
	}
}

func TestParseEmptyFieldsGetFallbacks(t *testing.T) {
	c := Parse("no recognizable structure at all")

	if c.Title != "Generated Assignment Title" {
		t.Errorf("Title fallback = %q", c.Title)
	}
	if len(c.KeyPoints) != 3 {
		t.Errorf("KeyPoints fallback = %v", c.KeyPoints)
	}
	if c.Vision == "" || c.Mission == "" || c.Conclusion == "" {
		t.Error("fallbacks left fields empty")
	}
}

func TestParsePartialJSONFallsBackPerField(t *testing.T) {
	c := Parse(`{"title":"Only Title"}`)

	if c.Title != "Only Title" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Vision != "Vision statement will be generated based on your requirements." {
		t.Errorf("Vision fallback missing: %q", c.Vision)
	}
	if len(c.KeyPoints) != 3 {
		t.Errorf("KeyPoints fallback = %v", c.KeyPoints)
	}
}
