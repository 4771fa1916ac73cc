package services

import (
	"context"
	"math"

	"github.com/Ranjith1717-CPU/Civicscoop/dto"
	"github.com/Ranjith1717-CPU/Civicscoop/models"
	"github.com/Ranjith1717-CPU/Civicscoop/repositories"
)

// AnalyticsService computes dashboard aggregates over stored meetings.
type AnalyticsService struct {
	repo *repositories.MeetingRepository
}

func NewAnalyticsService(repo *repositories.MeetingRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Compute scans all meetings and builds the analytics response.
func (s *AnalyticsService) Compute(ctx context.Context) (*dto.AnalyticsDTO, error) {
	meetings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate(meetings), nil
}

func aggregate(meetings []models.Meeting) *dto.AnalyticsDTO {
	out := &dto.AnalyticsDTO{
		PriorityDistribution: map[string]int64{},
		LocationDistribution: map[string]int64{},
		TopicDistribution:    map[string]int64{},
	}

	var accuracySum float64
	var accuracyCount int64
	for _, m := range meetings {
		out.TotalMeetings++
		switch m.Status {
		case models.MeetingStatusAnalyzed:
			out.AnalyzedMeetings++
		case models.MeetingStatusFailed:
			out.FailedMeetings++
		}
		if m.Status == models.MeetingStatusAnalyzed {
			accuracySum += m.AIAccuracy
			accuracyCount++
		}
		if m.Priority != "" {
			out.PriorityDistribution[m.Priority]++
		}
		if m.Location != "" {
			out.LocationDistribution[m.Location]++
		}
		for _, topic := range m.Topics {
			out.TopicDistribution[topic]++
		}
	}
	if accuracyCount > 0 {
		// one decimal place
		out.AverageAccuracy = math.Round(accuracySum/float64(accuracyCount)*10) / 10
	}
	return out
}
