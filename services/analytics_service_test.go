package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ranjith1717-CPU/Civicscoop/models"
)

func TestAggregateDistributions(t *testing.T) {
	meetings := []models.Meeting{
		{Status: models.MeetingStatusAnalyzed, Priority: "high", Location: "Austin", Topics: []string{"Budget", "Housing"}, AIAccuracy: 90},
		{Status: models.MeetingStatusAnalyzed, Priority: "low", Location: "Austin", Topics: []string{"Budget"}, AIAccuracy: 85},
		{Status: models.MeetingStatusFailed, Priority: "low", Location: "Unknown", Topics: []string{"General"}},
		{Status: models.MeetingStatusPending},
	}

	out := aggregate(meetings)

	assert.Equal(t, int64(4), out.TotalMeetings)
	assert.Equal(t, int64(2), out.AnalyzedMeetings)
	assert.Equal(t, int64(1), out.FailedMeetings)
	assert.Equal(t, 87.5, out.AverageAccuracy)
	assert.Equal(t, int64(2), out.PriorityDistribution["low"])
	assert.Equal(t, int64(1), out.PriorityDistribution["high"])
	assert.Equal(t, int64(2), out.LocationDistribution["Austin"])
	assert.Equal(t, int64(2), out.TopicDistribution["Budget"])
}

func TestAggregateEmpty(t *testing.T) {
	out := aggregate(nil)

	assert.Equal(t, int64(0), out.TotalMeetings)
	assert.Equal(t, 0.0, out.AverageAccuracy)
	assert.Empty(t, out.PriorityDistribution)
}
