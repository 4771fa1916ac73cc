package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	maxQuoteCandidates = 5
	maxQuotes          = 3
	minQuoteLength     = 30
	maxQuoteLength     = 200
	maxQuoteConfidence = 98.0
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// A sentence qualifies as a quote when it matches at least one indicator
// group: a reporting verb, modal urgency, or emphasis wording.
var quoteIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:said|stated|announced|declared|emphasized|noted)\b`),
	regexp.MustCompile(`(?i)\b(?:will|must|need|should|committed|plan)\b`),
	regexp.MustCompile(`(?i)\b(?:important|critical|significant|essential)\b`),
}

var speakerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:mayor|council\s*member|supervisor|commissioner|director)\s+([a-z]+)`),
	regexp.MustCompile(`([a-z]+)\s+(?:said|stated|announced)`),
}

var (
	modalUrgencyRe = regexp.MustCompile(`(?i)\b(?:will|must|need|should)\b`)
	emphasisRe     = regexp.MustCompile(`(?i)\b(?:important|critical|significant)\b`)
)

// extractQuotes scans sentence candidates in document order, stops once five
// have qualified, then keeps the top three by confidence.
func extractQuotes(content string) []Quote {
	sentences := sentenceSplitRe.Split(content, -1)
	quotes := []Quote{}

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)

		length := utf8.RuneCountInString(sentence)
		if length >= minQuoteLength && length <= maxQuoteLength && matchesAnyIndicator(sentence) {
			quotes = append(quotes, Quote{
				Text:       sentence,
				Speaker:    identifySpeaker(sentence),
				Confidence: quoteConfidence(sentence),
				Timestamp:  "00:00:00", // no transcript timing available
				Context:    "extracted_from_content",
			})
		}

		if len(quotes) >= maxQuoteCandidates {
			break
		}
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Confidence > quotes[j].Confidence
	})
	if len(quotes) > maxQuotes {
		quotes = quotes[:maxQuotes]
	}
	return quotes
}

func matchesAnyIndicator(sentence string) bool {
	for _, indicator := range quoteIndicators {
		if indicator.MatchString(sentence) {
			return true
		}
	}
	return false
}

// identifySpeaker matches a civic title followed by a name, then a plain
// "<name> said" pattern, then falls back to a role inferred from the quote's
// subject matter.
func identifySpeaker(quote string) string {
	quoteLower := strings.ToLower(quote)

	for _, pattern := range speakerPatterns {
		if m := pattern.FindStringSubmatch(quoteLower); m != nil {
			return "Council Member " + titleCase(m[1])
		}
	}

	if containsAny(quoteLower, "budget", "financial", "cost") {
		return "Finance Director"
	}
	if containsAny(quoteLower, "development", "planning", "zoning") {
		return "Planning Director"
	}
	return "Council Member"
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// quoteConfidence starts from a base of 50 and rewards urgency wording,
// emphasis wording, an optimal length, and internal structure, capped at 98.
func quoteConfidence(quote string) float64 {
	confidence := 50.0

	if modalUrgencyRe.MatchString(quote) {
		confidence += 20
	}
	if emphasisRe.MatchString(quote) {
		confidence += 15
	}
	if length := utf8.RuneCountInString(quote); length >= 50 && length <= 150 {
		confidence += 10
	}
	if strings.Count(quote, ",") >= 1 {
		confidence += 5
	}

	return min(confidence, maxQuoteConfidence)
}
