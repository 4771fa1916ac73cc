package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/Ranjith1717-CPU/Civicscoop/analyzer"
	"github.com/Ranjith1717-CPU/Civicscoop/config"
	"github.com/Ranjith1717-CPU/Civicscoop/db"
	"github.com/Ranjith1717-CPU/Civicscoop/eventbus"
	"github.com/Ranjith1717-CPU/Civicscoop/feeder"
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
	meetingSvc := services.NewMeetingService(meetingRepo, analyzer.New())
	eventSvc := services.NewEventService(bus, "feeder")

	ingest := func() {
		for _, feed := range cfg.Feeds {
			items, err := feeder.FetchRssFeeds(feed.RSSURL, cfg.Feeder.BatchSize)
			if err != nil {
				config.Logger.Errorf("failed to fetch feed for %s (%s): %v", feed.City, feed.RSSURL, err)
				continue
			}

			registered := 0
			for _, item := range items {
				m, known, err := meetingSvc.RegisterPending(ctx, item.Link, feed.City)
				if err != nil {
					config.Logger.Errorf("failed to register meeting %s: %v", item.Link, err)
					continue
				}
				if known {
					continue
				}
				if err := eventSvc.PublishMeetingCreated(ctx, m, false); err != nil {
					config.Logger.Errorf("failed to publish meeting.created for %s: %v", item.Link, err)
					continue
				}
				registered++
			}
			config.Logger.Infof("feed %s: %d items, %d new meetings", feed.City, len(items), registered)
		}
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.Feeder.Schedule, ingest); err != nil {
		config.Logger.Errorf("invalid feeder schedule %q: %v", cfg.Feeder.Schedule, err)
		os.Exit(1)
	}
	c.Start()
	defer c.Stop()

	config.Logger.Infof("feeder started, schedule %q, %d feeds", cfg.Feeder.Schedule, len(cfg.Feeds))

	// Run one ingestion immediately; the cron schedule covers the rest.
	ingest()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	config.Logger.Info("received shutdown signal, shutting down feeder service...")
	cancel()
	config.Logger.Info("feeder service stopped")
}
