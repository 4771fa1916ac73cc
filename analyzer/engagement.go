package analyzer

import (
	"fmt"
	"strings"
)

// Engagement factor keyword groups. Each group contributes at most 20 points
// so no single signal dominates the estimate.
var engagementFactors = []struct {
	name     string
	keywords []string
}{
	{"controversial_topics", []string{"tax", "budget cut", "closure", "rezoning", "development"}},
	{"community_impact", []string{"neighborhood", "resident", "community", "local business"}},
	{"public_participation", []string{"public comment", "hearing", "input", "feedback"}},
	{"media_attention", []string{"news", "media", "press", "announcement"}},
}

var urlEngagementMarkers = []string{"public-hearing", "town-hall", "community"}

const (
	maxFactorScore = 20
	minEngagement  = 5
	maxEngagement  = 95
)

// estimateEngagement is a heuristic proxy for expected citizen interest,
// derived from content length, topical signal words and the URL itself.
// The result is a percentage string clamped to [5, 95].
func estimateEngagement(content, rawURL string) string {
	contentLower := strings.ToLower(content)
	wordCount := len(strings.Fields(contentLower))

	score := 0
	switch {
	case wordCount > 5000:
		score += 40
	case wordCount > 2000:
		score += 25
	case wordCount > 1000:
		score += 15
	}

	for _, factor := range engagementFactors {
		factorScore := 0
		for _, kw := range factor.keywords {
			factorScore += strings.Count(contentLower, kw)
		}
		score += min(factorScore*5, maxFactorScore)
	}

	urlLower := strings.ToLower(rawURL)
	for _, marker := range urlEngagementMarkers {
		if strings.Contains(urlLower, marker) {
			score += 15
			break
		}
	}

	score = min(max(score, minEngagement), maxEngagement)
	return fmt.Sprintf("%d%%", score)
}
