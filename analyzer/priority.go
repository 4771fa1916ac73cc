package analyzer

import (
	"regexp"
	"strings"
)

var criticalPatterns = compilePatterns(
	"emergency", "crisis", "urgent", "immediate", "critical",
	"public safety", "disaster", "evacuation", "health emergency",
)

var highPatterns = compilePatterns(
	"important", "significant", "major", "priority", "budget crisis",
	"housing crisis", "infrastructure failure", "public concern",
)

var mediumPatterns = compilePatterns(
	"review", "discussion", "consideration", "proposal",
	"planning", "development", "improvement",
)

func compilePatterns(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func countMatches(patterns []*regexp.Regexp, text string) int {
	total := 0
	for _, p := range patterns {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}

// classifyPriority maps content to exactly one urgency bucket. The decision
// ladder favors critical signals, then lets sheer volume of weaker signals
// push long documents up one level.
func classifyPriority(content string) string {
	contentLower := strings.ToLower(content)

	criticalScore := countMatches(criticalPatterns, contentLower)
	highScore := countMatches(highPatterns, contentLower)
	mediumScore := countMatches(mediumPatterns, contentLower)

	totalWords := len(strings.Fields(contentLower))

	switch {
	case criticalScore > 0 || (highScore > 3 && totalWords > 5000):
		return PriorityCritical
	case highScore > 0 || (mediumScore > 5 && totalWords > 2000):
		return PriorityHigh
	case mediumScore > 0:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
