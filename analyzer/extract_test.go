package analyzer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func parseMarkup(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractTitleFromHeading(t *testing.T) {
	doc := parseMarkup(t, `<html><head><title>Portal</title></head>
		<body><h1>Austin City Council: Housing Crisis Response Meeting</h1></body></html>`)

	assert.Equal(t, "Austin City Council: Housing Crisis Response Meeting", extractTitle(doc))
}

func TestExtractTitleStripsSiteSuffix(t *testing.T) {
	doc := parseMarkup(t, `<body><h1>Seattle Budget Session Overview | seattle.gov</h1></body>`)

	assert.Equal(t, "Seattle Budget Session Overview", extractTitle(doc))
}

func TestExtractTitleFallsThroughShortHeadings(t *testing.T) {
	// The h1 is too short after trimming, so the title element wins.
	doc := parseMarkup(t, `<html><head><title>Denver Town Council Public Hearing</title></head>
		<body><h1>Agenda</h1></body></html>`)

	assert.Equal(t, "Denver Town Council Public Hearing", extractTitle(doc))
}

func TestExtractTitleGenericFallback(t *testing.T) {
	doc := parseMarkup(t, `<body><p>no headings here</p></body>`)

	assert.Equal(t, defaultTitle, extractTitle(doc))
}

func TestExtractLocationFromCityPattern(t *testing.T) {
	content := "The City of Portland council convened to review transit plans."

	assert.Equal(t, "Portland", extractLocation(content, "https://example.org"))
}

func TestExtractLocationFromCityCouncilPattern(t *testing.T) {
	loc := extractLocation("Riverside city council convened at noon.", "https://example.org")

	assert.Equal(t, "Riverside", loc)
}

func TestExtractLocationFromKnownCityList(t *testing.T) {
	content := "Residents gathered downtown in Memphis for the public hearing."

	assert.Equal(t, "Memphis", extractLocation(content, "https://example.org"))
}

func TestExtractLocationFromURLHost(t *testing.T) {
	loc := extractLocation("No place names appear in this text at all.", "https://meetings.austin.gov/2024")

	assert.Equal(t, "Austin", loc)
}

func TestExtractLocationUnknown(t *testing.T) {
	loc := extractLocation("Nothing geographic here.", "https://example.org/minutes")

	assert.Equal(t, "Unknown", loc)
}

func TestExtractDateReturnsRawMatch(t *testing.T) {
	// Matches are raw substrings from the lowercased text; no semantic
	// parsing or validation happens on purpose.
	assert.Equal(t, "january 15, 2025", extractDate("The meeting was held on January 15, 2025 downtown."))
	assert.Equal(t, "03/04/2025", extractDate("Scheduled for 03/04/2025 at city hall."))
	assert.Equal(t, "2025-03-04", extractDate("Posted 2025-03-04 by the clerk."))
}

func TestExtractDateFallsBackToToday(t *testing.T) {
	got := extractDate("no dates appear in this text")

	assert.Regexp(t, regexp.MustCompile(`^[A-Z][a-z]+ \d{2}, \d{4}$`), got)
}
