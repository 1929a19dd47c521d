package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"woodshop-assistant-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAnalyticsService interface {
	// Track publishes an event on the in-process bus. Failures are logged,
	// never surfaced; analytics must not affect request outcomes.
	Track(ctx context.Context, event events.Event)
}

type analyticsService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewAnalyticsService(topicName string, pubSub *gochannel.GoChannel) IAnalyticsService {
	return &analyticsService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

// trackedEventMessage is the wire shape on the analytics topic.
type trackedEventMessage struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (s *analyticsService) Track(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(trackedEventMessage{
		Type:       event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		log.Printf("[ERROR] Failed to marshal analytics event %s: %v", event.EventType(), err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		log.Printf("[ERROR] Failed to publish analytics event %s: %v", event.EventType(), err)
	}
}
