package dto

// AnalyticsDTO aggregates dashboard numbers over all stored meetings.
type AnalyticsDTO struct {
	TotalMeetings        int64            `json:"total_meetings"`
	AnalyzedMeetings     int64            `json:"analyzed_meetings"`
	FailedMeetings       int64            `json:"failed_meetings"`
	AverageAccuracy      float64          `json:"average_accuracy"`
	PriorityDistribution map[string]int64 `json:"priority_distribution"`
	LocationDistribution map[string]int64 `json:"location_distribution"`
	TopicDistribution    map[string]int64 `json:"topic_distribution"`
}
