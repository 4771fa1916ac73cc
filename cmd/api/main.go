package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"

	"github.com/Ranjith1717-CPU/Civicscoop/api/router"
	"github.com/Ranjith1717-CPU/Civicscoop/config"
	"github.com/Ranjith1717-CPU/Civicscoop/db"
	_ "github.com/Ranjith1717-CPU/Civicscoop/docs"
	"github.com/Ranjith1717-CPU/Civicscoop/eventbus"
	"github.com/Ranjith1717-CPU/Civicscoop/services"
)

// @title           CivicScoop API
// @version         1.0
// @description     API for analyzing and browsing civic meeting pages
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	if err := db.Init(context.Background()); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	// Kafka is optional for the API: without brokers the analyze endpoint
	// still works, it just skips event publishing.
	var evts *services.EventService
	if brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); brokers != "" {
		bus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			config.Logger.Errorf("failed to create event bus: %v", err)
			os.Exit(1)
		}
		defer bus.Close()
		evts = services.NewEventService(bus, "api")
	}

	r := router.New(evts)

	// The dashboard front end is served from a different origin.
	handler := cors.AllowAll().Handler(r)

	config.Logger.Infof("api listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		config.Logger.Errorf("server error: %v", err)
		os.Exit(1)
	}
}
