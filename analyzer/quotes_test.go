package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQuotesQualifiesIndicatorSentences(t *testing.T) {
	content := "The mayor announced the city will need important housing funding. " +
		"Budget talks continue next week."

	quotes := extractQuotes(content)

	assert.Len(t, quotes, 1)
	assert.Equal(t, "The mayor announced the city will need important housing funding", quotes[0].Text)
	assert.Contains(t, quotes[0].Speaker, "Council Member")
	assert.Equal(t, "00:00:00", quotes[0].Timestamp)
	assert.Equal(t, "extracted_from_content", quotes[0].Context)
}

func TestExtractQuotesSkipsShortAndLongSentences(t *testing.T) {
	content := "We must act. " + // too short
		"The director stated that " + strings.Repeat("very ", 50) + "long remarks were made." // too long

	assert.Empty(t, extractQuotes(content))
}

func TestExtractQuotesKeepsTopThreeByConfidence(t *testing.T) {
	content := "Council member adams said the shelter program helps everyone involved. " +
		"The committee stated that parking rules were reviewed thoroughly this session. " +
		"Supervisor brown noted we must make critical and important choices, starting now. " +
		"The clerk announced that minutes from last week were approved without objection. " +
		"Commissioner davis declared the initiative will be significant, moving forward quickly. " +
		"The treasurer said interest earnings exceeded every projection made this year."

	quotes := extractQuotes(content)

	assert.Len(t, quotes, 3)
	for i := 1; i < len(quotes); i++ {
		assert.GreaterOrEqual(t, quotes[i-1].Confidence, quotes[i].Confidence)
	}
	for _, q := range quotes {
		assert.Greater(t, q.Confidence, 0.0)
		assert.LessOrEqual(t, q.Confidence, maxQuoteConfidence)
	}
}

func TestIdentifySpeakerFromTitlePattern(t *testing.T) {
	speaker := identifySpeaker("Mayor Johnson said the project moves ahead")

	assert.Equal(t, "Council Member Johnson", speaker)
}

func TestIdentifySpeakerTopicalFallback(t *testing.T) {
	assert.Equal(t, "Finance Director", identifySpeaker("the cost estimates were revised upward"))
	assert.Equal(t, "Planning Director", identifySpeaker("the zoning variance is under review"))
	assert.Equal(t, "Council Member", identifySpeaker("the event went well"))
}

func TestQuoteConfidenceComponents(t *testing.T) {
	// base 50 only
	assert.Equal(t, 50.0, quoteConfidence("xx"))

	// base + modal urgency
	assert.Equal(t, 70.0, quoteConfidence("we must act"))

	// base + modal + emphasis + optimal length + comma, capped at 98
	loaded := "We must deliver this important housing package, and we should do it now because residents need it"
	assert.Equal(t, maxQuoteConfidence, quoteConfidence(loaded))
}
