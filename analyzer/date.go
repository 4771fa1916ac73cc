package analyzer

import (
	"regexp"
	"strings"
	"time"
)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}`),
	regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{4}`),
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
}

// extractDate returns the first date-looking substring verbatim. The raw
// match is deliberately not parsed or validated; callers depend on the
// literal string form. Falls back to today when nothing matches.
func extractDate(content string) string {
	contentLower := strings.ToLower(content)

	for _, pattern := range datePatterns {
		if m := pattern.FindString(contentLower); m != "" {
			return m
		}
	}

	return time.Now().Format(fallbackDateFormat)
}
