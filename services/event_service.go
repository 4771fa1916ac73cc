package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ranjith1717-CPU/Civicscoop/eventbus"
	"github.com/Ranjith1717-CPU/Civicscoop/events"
	"github.com/Ranjith1717-CPU/Civicscoop/models"
)

// EventService publishes meeting lifecycle events to the bus.
type EventService struct {
	bus    eventbus.EventBus
	source string
}

// NewEventService creates an event publishing service. source names the
// publishing binary ("api", "feeder", "worker").
func NewEventService(bus eventbus.EventBus, source string) *EventService {
	return &EventService{bus: bus, source: source}
}

// PublishMeetingCreated announces a registered meeting that still needs
// analysis.
func (s *EventService) PublishMeetingCreated(ctx context.Context, m *models.Meeting, render bool) error {
	payload := events.MeetingCreatedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.MeetingCreated,
			Timestamp: time.Now(),
			Source:    s.source,
			Version:   "1.0",
		},
		MeetingID:   m.ID,
		URL:         m.URL,
		CustomTitle: m.CustomTitle,
		Notes:       m.Notes,
		Render:      render,
	}
	evt, err := eventbus.NewJSONEvent(payload.ID, payload, 0)
	if err != nil {
		return err
	}
	return s.bus.Publish(ctx, eventbus.TopicMeetingEvents.Base(), evt)
}

// PublishMeetingAnalyzed announces persisted analysis results.
func (s *EventService) PublishMeetingAnalyzed(ctx context.Context, m *models.Meeting) error {
	payload := events.MeetingAnalyzedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.MeetingAnalyzed,
			Timestamp: time.Now(),
			Source:    s.source,
			Version:   "1.0",
		},
		MeetingID: m.ID,
		URL:       m.URL,
		Title:     m.Title,
		Priority:  m.Priority,
		Topics:    m.Topics,
		Failed:    m.Status == models.MeetingStatusFailed,
	}
	evt, err := eventbus.NewJSONEvent(payload.ID, payload, 0)
	if err != nil {
		return err
	}
	return s.bus.Publish(ctx, eventbus.TopicMeetingEvents.Base(), evt)
}
