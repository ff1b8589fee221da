package assignment

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonBlockRe  = regexp.MustCompile(`\{[\s\S]*\}`)
	headingRe    = regexp.MustCompile(`^#+\s*`)
	bulletRe     = regexp.MustCompile(`^[•\-*]\s*|^\d+\.\s*`)
	titleRe      = regexp.MustCompile(`(?i)^title:?\s*`)
	visionRe     = regexp.MustCompile(`(?i)^.*vision:?\s*`)
	missionRe    = regexp.MustCompile(`(?i)^.*mission:?\s*`)
	conclusionRe = regexp.MustCompile(`(?i)^.*conclusion:?\s*`)
)

// Parse interprets a structured or JSON-like response into Content. It tries
// an embedded JSON object first, then falls back to line-by-line section
// parsing. Empty fields after parsing receive fixed fallback text, so the
// result is always fully populated.
func Parse(response string) Content {
	if m := jsonBlockRe.FindString(response); m != "" {
		var c Content
		if err := json.Unmarshal([]byte(m), &c); err == nil {
			return applyFallbacks(c)
		}
	}
	return applyFallbacks(parseStructured(response))
}

func parseStructured(response string) Content {
	var c Content
	section := ""

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "title:") || strings.HasPrefix(lower, "title"):
			c.Title = headingRe.ReplaceAllString(titleRe.ReplaceAllString(line, ""), "")
			section = "title"
		case strings.Contains(lower, "vision:") || strings.Contains(lower, "vision statement"):
			c.Vision = headingRe.ReplaceAllString(visionRe.ReplaceAllString(line, ""), "")
			section = "vision"
		case strings.Contains(lower, "mission:") || strings.Contains(lower, "mission statement"):
			c.Mission = headingRe.ReplaceAllString(missionRe.ReplaceAllString(line, ""), "")
			section = "mission"
		case strings.Contains(lower, "key points") || strings.Contains(lower, "main points"):
			section = "keyPoints"
		case strings.Contains(lower, "conclusion"):
			c.Conclusion = headingRe.ReplaceAllString(conclusionRe.ReplaceAllString(line, ""), "")
			section = "conclusion"
		case bulletRe.MatchString(line):
			if section == "keyPoints" {
				c.KeyPoints = append(c.KeyPoints, bulletRe.ReplaceAllString(line, ""))
			}
		case !strings.HasPrefix(line, "#"):
			// Continuation line fills the current section if still empty.
			switch section {
			case "title":
				if c.Title == "" {
					c.Title = line
				}
			case "vision":
				if c.Vision == "" {
					c.Vision = line
				}
			case "mission":
				if c.Mission == "" {
					c.Mission = line
				}
			case "conclusion":
				if c.Conclusion == "" {
					c.Conclusion = line
				}
			}
		}
	}
	return c
}

func applyFallbacks(c Content) Content {
	if c.Title == "" {
		c.Title = "Generated Assignment Title"
	}
	if c.Vision == "" {
		c.Vision = "Vision statement will be generated based on your requirements."
	}
	if c.Mission == "" {
		c.Mission = "Mission statement will be generated based on your requirements."
	}
	if len(c.KeyPoints) == 0 {
		c.KeyPoints = []string{"Key point 1", "Key point 2", "Key point 3"}
	}
	if c.Conclusion == "" {
		c.Conclusion = "Conclusion will be generated based on your requirements."
	}
	return c
}
