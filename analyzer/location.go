package analyzer

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:city of|town of|municipality of)\s+([a-z\s]+?)(?:\s+city|\s+council|\s+government)`),
	regexp.MustCompile(`([a-z\s]+?)\s+city\s+council`),
	regexp.MustCompile(`([a-z\s]+?)\s+town\s+council`),
	regexp.MustCompile(`([a-z\s]+?)\s+board\s+of\s+supervisors`),
}

var majorCities = []string{
	"Austin", "Seattle", "Miami", "Denver", "Portland", "Richmond",
	"Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego",
	"Dallas", "San Jose", "Chicago", "Detroit", "Memphis", "Boston",
	"Washington", "Nashville", "Baltimore", "Oklahoma City", "Louisville",
	"Milwaukee", "Las Vegas", "Albuquerque", "Tucson", "Fresno",
	"Sacramento", "Mesa", "Kansas City", "Atlanta", "Colorado Springs",
}

// extractLocation infers a place name from content patterns, then from a
// known-city table, then from the URL host. Returns "Unknown" when nothing
// matches.
func extractLocation(content, rawURL string) string {
	contentLower := strings.ToLower(content)

	for _, pattern := range cityPatterns {
		if m := pattern.FindStringSubmatch(contentLower); m != nil {
			city := titleCase(strings.TrimSpace(m[1]))
			if length := utf8.RuneCountInString(city); length > 2 && length < 50 {
				return city
			}
		}
	}

	for _, city := range majorCities {
		if strings.Contains(contentLower, strings.ToLower(city)) {
			return city
		}
	}

	if u, err := url.Parse(rawURL); err == nil {
		host := strings.ToLower(u.Host)
		for _, city := range majorCities {
			if strings.Contains(host, strings.ToLower(city)) {
				return city
			}
		}
	}

	return "Unknown"
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
