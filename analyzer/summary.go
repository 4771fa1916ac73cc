package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minAccuracy  = 60.0
	maxAccuracy  = 99.0
	baseAccuracy = 85.0
)

var (
	structuredContentRe = regexp.MustCompile(`(?i)agenda|meeting|council|motion|vote`)
	timestampRe         = regexp.MustCompile(`\d{1,2}:\d{2}`)
)

// calculateAccuracyScore grades how much the analyzer can trust its own
// output given the content it saw: longer, structured, timestamped content
// scores higher. Bounded to [60, 99].
func calculateAccuracyScore(content string) float64 {
	accuracy := baseAccuracy

	wordCount := len(strings.Fields(content))
	switch {
	case wordCount > 5000:
		accuracy += 10
	case wordCount > 2000:
		accuracy += 5
	case wordCount < 500:
		accuracy -= 15
	}

	if structuredContentRe.MatchString(content) {
		accuracy += 5
	}
	if timestampRe.MatchString(content) {
		accuracy += 3
	}

	return min(max(accuracy, minAccuracy), maxAccuracy)
}

const (
	briefContentSummary  = "Brief meeting content with limited details available."
	genericMeetingSummary = "Meeting content analysis completed with standard civic topics discussed."
)

// generateSummary joins the first two usable sentence fragments from the top
// of the document.
func generateSummary(content string) string {
	if len(strings.Fields(content)) < 100 {
		return briefContentSummary
	}

	sentences := sentenceSplitRe.Split(content, -1)
	if len(sentences) > 5 {
		sentences = sentences[:5]
	}

	var meaningful []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if length := utf8.RuneCountInString(s); length > 20 && length < 200 {
			meaningful = append(meaningful, s)
		}
	}

	if len(meaningful) == 0 {
		return genericMeetingSummary
	}
	if len(meaningful) > 2 {
		meaningful = meaningful[:2]
	}
	return strings.Join(meaningful, ". ") + "."
}
