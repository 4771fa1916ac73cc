package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func repeatWords(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

func TestExtractTopicsRanksByScore(t *testing.T) {
	content := "The budget covers funding and revenue. Housing was mentioned once."

	topics := extractTopics(content)

	assert.Equal(t, []string{"Budget", "Housing"}, topics)
}

func TestExtractTopicsWholeWordMatchingOnly(t *testing.T) {
	// "rental" must not count for the "rent" keyword.
	topics := extractTopics("The rental ordinance discussion touched on parks.")

	assert.NotContains(t, topics, "Housing")
}

func TestExtractTopicsCapsAtFour(t *testing.T) {
	content := "housing budget climate transit police school health business water park"

	topics := extractTopics(content)

	assert.Len(t, topics, 4)
}

func TestExtractTopicsDefaultsToGeneral(t *testing.T) {
	assert.Equal(t, []string{"General"}, extractTopics("completely unrelated wording"))
}

func TestExtractTopicsScoringIsMonotonic(t *testing.T) {
	base := "budget budget housing"
	boosted := base + " housing housing"

	assert.Equal(t, []string{"Budget", "Housing"}, extractTopics(base))
	// Adding more occurrences of a topic's keyword never lowers its rank.
	assert.Equal(t, []string{"Housing", "Budget"}, extractTopics(boosted))
}

func TestClassifyPriorityCritical(t *testing.T) {
	assert.Equal(t, PriorityCritical, classifyPriority("The emergency evacuation order takes effect tonight."))
	// Critical indicators win regardless of document length.
	assert.Equal(t, PriorityCritical, classifyPriority("emergency evacuation"))
}

func TestClassifyPriorityHigh(t *testing.T) {
	assert.Equal(t, PriorityHigh, classifyPriority("An important vote on the housing measure."))
}

func TestClassifyPriorityHighFromMediumVolume(t *testing.T) {
	// Six medium indicators in a >2000 word document push it to high.
	content := repeatWords("review", 6) + " " + repeatWords("lorem", 1995)
	assert.Equal(t, PriorityHigh, classifyPriority(content))

	// At exactly 2000 words the volume rule does not trigger.
	atThreshold := repeatWords("review", 6) + " " + repeatWords("lorem", 1994)
	assert.Equal(t, PriorityMedium, classifyPriority(atThreshold))
}

func TestClassifyPriorityMediumAndLow(t *testing.T) {
	assert.Equal(t, PriorityMedium, classifyPriority("The proposal is under consideration."))
	assert.Equal(t, PriorityLow, classifyPriority("Nothing notable happened."))
}

func TestClassifyPriorityLongKeywordFreeTextStaysLow(t *testing.T) {
	assert.Equal(t, PriorityLow, classifyPriority(repeatWords("lorem", 6000)))
}

func TestEstimateEngagementWordCountTiers(t *testing.T) {
	cases := []struct {
		words int
		want  string
	}{
		{words: 100, want: "5%"}, // clamped to the floor
		{words: 1001, want: "15%"},
		{words: 2001, want: "25%"},
		{words: 5001, want: "40%"},
	}

	for _, tc := range cases {
		got := estimateEngagement(repeatWords("lorem", tc.words), "https://example.org/minutes")
		assert.Equal(t, tc.want, got, "words=%d", tc.words)
	}
}

func TestEstimateEngagementFactorsAreCapped(t *testing.T) {
	// Ten "tax" occurrences would score 50 uncapped; the factor cap holds
	// it to 20.
	content := repeatWords("tax", 10)

	assert.Equal(t, "20%", estimateEngagement(content, "https://example.org"))
}

func TestEstimateEngagementURLBonus(t *testing.T) {
	content := repeatWords("lorem", 50)

	assert.Equal(t, "15%", estimateEngagement(content, "https://city.gov/town-hall/march"))
}

func TestCalculateAccuracyScoreBounds(t *testing.T) {
	// Short unstructured content: 85 - 15 = 70.
	assert.Equal(t, 70.0, calculateAccuracyScore(repeatWords("lorem", 50)))

	// Short but structured content with a timestamp: 85 - 15 + 5 + 3.
	assert.Equal(t, 78.0, calculateAccuracyScore("council meeting at 10:30 with votes"))

	// Long structured content never exceeds the ceiling.
	long := repeatWords("council", 6000) + " 10:30"
	assert.Equal(t, maxAccuracy, calculateAccuracyScore(long))
}

func TestGenerateSummaryBriefContent(t *testing.T) {
	assert.Equal(t, briefContentSummary, generateSummary("only a few words here"))
}

func TestGenerateSummaryJoinsFirstTwoSentences(t *testing.T) {
	content := "The council approved the housing measure after debate. " +
		"Funding will come from the general reserve account. " +
		"Further hearings are scheduled for next month. " +
		repeatWords("filler", 120)

	got := generateSummary(content)

	assert.Equal(t, "The council approved the housing measure after debate. Funding will come from the general reserve account.", got)
}

func TestGenerateSummaryGenericFallback(t *testing.T) {
	// Over 100 words but the opening fragments are all too long to use.
	content := repeatWords("word", 250)

	assert.Equal(t, genericMeetingSummary, generateSummary(content))
}
