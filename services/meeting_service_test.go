package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ranjith1717-CPU/Civicscoop/analyzer"
	"github.com/Ranjith1717-CPU/Civicscoop/models"
)

func TestPriorityScoreClamps(t *testing.T) {
	assert.Equal(t, "20%", PriorityScore(""))
	assert.Equal(t, "60%", PriorityScore("Budget Session"))
	assert.Equal(t, "95%", PriorityScore(strings.Repeat("x", 80)))
}

func TestEngagementLabel(t *testing.T) {
	assert.Equal(t, "45% high engagement", EngagementLabel("45%"))
}

func TestStatusForAnalysisResult(t *testing.T) {
	assert.Equal(t, models.MeetingStatusAnalyzed, statusFor(analyzer.AnalysisResult{}))
	assert.Equal(t, models.MeetingStatusFailed, statusFor(analyzer.AnalysisResult{Error: "Failed to fetch content: boom"}))
}
