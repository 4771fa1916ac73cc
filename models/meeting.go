package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ranjith1717-CPU/Civicscoop/analyzer"
)

// Meeting statuses.
const (
	MeetingStatusPending  = "pending"
	MeetingStatusAnalyzed = "analyzed"
	MeetingStatusFailed   = "failed"
)

// Meeting represents an analyzed (or pending) civic meeting document.
// Collection: meetings
type Meeting struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Status    string             `bson:"status" json:"status"`

	URL         string `bson:"url" json:"url"`
	CustomTitle string `bson:"custom_title,omitempty" json:"custom_title,omitempty"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
	City        string `bson:"city,omitempty" json:"city,omitempty"`

	Title         string   `bson:"title" json:"title"`
	Location      string   `bson:"location" json:"location"`
	MeetingDate   string   `bson:"meeting_date" json:"meeting_date"`
	Topics        []string `bson:"topics" json:"topics"`
	Priority      string   `bson:"priority" json:"priority"`
	PriorityScore string   `bson:"priority_score" json:"priority_score"`
	Engagement    string   `bson:"engagement" json:"engagement"`
	AIAccuracy    float64  `bson:"ai_accuracy" json:"ai_accuracy"`
	Summary       string   `bson:"summary" json:"summary"`
	ThumbnailURL  string   `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`

	// Analysis holds the full analyzer output snapshot.
	Analysis analyzer.AnalysisResult `bson:"analysis" json:"analysis"`
}
