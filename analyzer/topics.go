package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

const maxTopics = 4

// topicEntry couples a canonical topic label with its keyword set. The table
// is an ordered slice, not a map: ties in score fall back to table order, and
// that tie-break must stay deterministic.
type topicEntry struct {
	label    string
	keywords []*regexp.Regexp
	weight   float64
}

var topicTable = buildTopicTable()

func buildTopicTable() []topicEntry {
	raw := []struct {
		label    string
		keywords []string
	}{
		{"Housing", []string{"housing", "affordable", "homeless", "rent", "development", "zoning", "residential"}},
		{"Budget", []string{"budget", "funding", "finance", "allocation", "spending", "revenue", "taxes"}},
		{"Climate", []string{"climate", "environment", "green", "sustainability", "carbon", "renewable", "emissions"}},
		{"Transit", []string{"transit", "transportation", "bus", "rail", "traffic", "parking", "roads"}},
		{"Public Safety", []string{"police", "safety", "crime", "emergency", "security", "fire", "ambulance"}},
		{"Education", []string{"school", "education", "student", "teacher", "learning", "university", "college"}},
		{"Healthcare", []string{"health", "hospital", "medical", "clinic", "wellness", "healthcare", "public health"}},
		{"Economic Development", []string{"economic", "business", "development", "jobs", "employment", "commerce", "industry"}},
		{"Infrastructure", []string{"infrastructure", "utilities", "water", "sewer", "electricity", "internet", "broadband"}},
		{"Parks & Recreation", []string{"park", "recreation", "sports", "playground", "community center", "library"}},
	}

	table := make([]topicEntry, 0, len(raw))
	for _, t := range raw {
		entry := topicEntry{label: t.label, weight: 1.0}
		for _, kw := range t.keywords {
			entry.keywords = append(entry.keywords, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		table = append(table, entry)
	}
	return table
}

// extractTopics scores every topic by whole-word keyword occurrences and
// returns up to four labels in descending score order. Topics that never
// matched are excluded; an empty result becomes ["General"].
func extractTopics(content string) []string {
	contentLower := strings.ToLower(content)

	type scoredTopic struct {
		label string
		score float64
	}

	var scored []scoredTopic
	for _, entry := range topicTable {
		var score float64
		for _, kw := range entry.keywords {
			score += float64(len(kw.FindAllStringIndex(contentLower, -1))) * entry.weight
		}
		if score > 0 {
			scored = append(scored, scoredTopic{label: entry.label, score: score})
		}
	}

	if len(scored) == 0 {
		return []string{"General"}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > maxTopics {
		scored = scored[:maxTopics]
	}

	topics := make([]string, 0, len(scored))
	for _, s := range scored {
		topics = append(topics, s.label)
	}
	return topics
}
