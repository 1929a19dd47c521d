package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"woodshop-assistant-be/internal/config"
	"woodshop-assistant-be/internal/pkg/logger"
	"woodshop-assistant-be/pkg/events"
	"woodshop-assistant-be/pkg/nats"
)

// The worker replays every analytics event from JetStream into an append-only
// event log file, kept apart from the API's application log.
func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Event Log (file only, no console mirror)
	eventLog := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)
	defer eventLog.Sync()

	// 3. Connect to NATS
	subscriber, err := nats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Unable to connect to NATS: %v", err)
	}
	defer subscriber.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Drain events.> until interrupted
	log.Println("Worker: draining analytics events...")
	err = subscriber.Consume(ctx, "events.>", "analytics-worker", func(ctx context.Context, event events.Event) error {
		eventLog.Info("analytics", event.EventType(), event.Payload())
		return nil
	})
	if err != nil {
		log.Fatalf("Worker stopped: %v", err)
	}
}
