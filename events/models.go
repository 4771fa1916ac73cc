package events

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType enumerates the meeting pipeline events.
type EventType string

const (
	MeetingCreated  EventType = "meeting.created"
	MeetingAnalyzed EventType = "meeting.analyzed"
)

// BaseEvent is the common part of every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "api", "feeder", "worker"
	Version   string    `json:"version"`
}

// GetType returns the event type.
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// MeetingCreatedEvent is published when a meeting URL is registered and
// still waits for analysis.
type MeetingCreatedEvent struct {
	BaseEvent
	MeetingID   primitive.ObjectID `json:"meeting_id"`
	URL         string             `json:"url"`
	CustomTitle string             `json:"custom_title,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	Render      bool               `json:"render,omitempty"`
}

// MeetingAnalyzedEvent is published once analysis results are persisted.
type MeetingAnalyzedEvent struct {
	BaseEvent
	MeetingID primitive.ObjectID `json:"meeting_id"`
	URL       string             `json:"url"`
	Title     string             `json:"title"`
	Priority  string             `json:"priority"`
	Topics    []string           `json:"topics"`
	Failed    bool               `json:"failed"`
}
