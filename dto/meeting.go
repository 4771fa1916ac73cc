package dto

import (
	"time"

	"github.com/Ranjith1717-CPU/Civicscoop/analyzer"
	"github.com/Ranjith1717-CPU/Civicscoop/models"
)

// AnalyzeMeetingRequest is the POST /meetings/analyze payload.
type AnalyzeMeetingRequest struct {
	URL         string `json:"url" binding:"required,url"`
	CustomTitle string `json:"custom_title"`
	Notes       string `json:"notes"`
}

// MeetingDTO exposes the fields needed for dashboard consumers.
// ID is a hex string to keep transport simple; the raw analysis snapshot is
// included so the front end can render quotes, agenda and participants.
type MeetingDTO struct {
	ID            string                  `json:"id"`
	URL           string                  `json:"url"`
	Status        string                  `json:"status"`
	Title         string                  `json:"title"`
	Location      string                  `json:"location"`
	MeetingDate   string                  `json:"meeting_date"`
	Topics        []string                `json:"topics"`
	Priority      string                  `json:"priority"`
	PriorityScore string                  `json:"priority_score"`
	Engagement    string                  `json:"engagement"`
	AIAccuracy    float64                 `json:"ai_accuracy"`
	Summary       string                  `json:"summary"`
	ThumbnailURL  string                  `json:"thumbnail_url,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
	Analysis      analyzer.AnalysisResult `json:"analysis"`
}

// NewMeetingDTO constructs MeetingDTO from models.Meeting.
func NewMeetingDTO(m models.Meeting) MeetingDTO {
	return MeetingDTO{
		ID:            m.ID.Hex(),
		URL:           m.URL,
		Status:        m.Status,
		Title:         m.Title,
		Location:      m.Location,
		MeetingDate:   m.MeetingDate,
		Topics:        m.Topics,
		Priority:      m.Priority,
		PriorityScore: m.PriorityScore,
		Engagement:    m.Engagement,
		AIAccuracy:    m.AIAccuracy,
		Summary:       m.Summary,
		ThumbnailURL:  m.ThumbnailURL,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Analysis:      m.Analysis,
	}
}

// MeetingListDTO is a paginated meetings response.
type MeetingListDTO struct {
	Items    []MeetingDTO `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}
