package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Ranjith1717-CPU/Civicscoop/analyzer"
	"github.com/Ranjith1717-CPU/Civicscoop/config"
	"github.com/Ranjith1717-CPU/Civicscoop/db"
	"github.com/Ranjith1717-CPU/Civicscoop/dto"
	"github.com/Ranjith1717-CPU/Civicscoop/eventbus"
	"github.com/Ranjith1717-CPU/Civicscoop/events"
	"github.com/Ranjith1717-CPU/Civicscoop/preview"
	"github.com/Ranjith1717-CPU/Civicscoop/renderer"
	"github.com/Ranjith1717-CPU/Civicscoop/repositories"
	"github.com/Ranjith1717-CPU/Civicscoop/services"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	brokers := eventbus.GetBrokers()
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicMeetingEvents, 3); err != nil {
		config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	meetingRepo := repositories.NewMeetingRepository(db.Database())
	a := analyzer.New()
	meetingSvc := services.NewMeetingService(meetingRepo, a)
	eventSvc := services.NewEventService(bus, "worker")

	groupID := eventbus.GetGroupID()

	handleMeetingCreated := func(ctx context.Context, ev *events.MeetingCreatedEvent) error {
		req := dto.AnalyzeMeetingRequest{
			URL:         ev.URL,
			CustomTitle: ev.CustomTitle,
			Notes:       ev.Notes,
		}
		opts := analyzer.Options{CustomTitle: ev.CustomTitle, Notes: ev.Notes}

		var markup string
		var result *analyzer.AnalysisResult
		if ev.Render {
			rendered, rerr := renderer.RenderHTML(ev.URL)
			if rerr != nil {
				config.Logger.Warnf("render failed for %s, falling back to plain fetch: %v", ev.URL, rerr)
			} else {
				markup = rendered
			}
		}
		if markup == "" {
			fetched, ferr := a.FetchMarkup(ctx, ev.URL)
			if ferr != nil {
				result = analyzer.FetchFailureResult(ev.URL, ferr)
			} else {
				markup = fetched
			}
		}
		if result == nil {
			result = a.AnalyzeMarkup(ev.URL, markup, opts)
		}

		m, err := meetingSvc.StoreAnalysis(ctx, req, *result)
		if err != nil {
			return err
		}

		if markup != "" {
			if p := preview.FromHTML(markup, ev.URL); p.TopImage != "" {
				if err := meetingRepo.UpdateThumbnailURL(ctx, m.ID, p.TopImage); err != nil {
					config.Logger.Warnf("failed to store thumbnail for %s: %v", ev.URL, err)
				}
			}
		}

		return eventSvc.PublishMeetingAnalyzed(ctx, m)
	}

	subscribeRunner := func() error {
		return bus.Subscribe(ctx, groupID, eventbus.TopicMeetingEvents, func(ctx context.Context, ev eventbus.Event) error {
			// Peek the event type first; BaseEvent.Type is top-level.
			var peek struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(ev.Payload, &peek); err != nil {
				return err
			}
			switch events.EventType(peek.Type) {
			case events.MeetingCreated:
				v, err := eventbus.DecodeJSON[events.MeetingCreatedEvent](ev)
				if err != nil {
					return err
				}
				return handleMeetingCreated(ctx, &v)
			default:
				// Events for other consumers are committed untouched.
				return nil
			}
		})
	}

	config.Logger.Info("starting worker service with eventbus...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := subscribeRunner(); err != nil && err != context.Canceled {
			config.Logger.Errorf("eventbus subscribe error: %v", err)
		}
	}()

	// Delayed-retry reinjection runs alongside the main consumer.
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := bus.StartRetryReinjector(ctx, groupID+".reinjector", eventbus.TopicMeetingEvents); err != nil && err != context.Canceled {
			config.Logger.Errorf("retry reinjector error: %v", err)
		}
	}()

	<-sigChan
	config.Logger.Info("received shutdown signal, shutting down worker service...")

	cancel()
	wg.Wait()

	config.Logger.Info("worker service stopped")
}
