package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/repository/contract"
	"woodshop-assistant-be/pkg/events"
	pktNats "woodshop-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the analytics topic: each event is persisted to the
// tracked_events table and forwarded to NATS for downstream consumers.
type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	eventRepository contract.TrackedEventRepository
	natsPublisher   *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	eventRepository contract.TrackedEventRepository,
	natsPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		eventRepository: eventRepository,
		natsPublisher:   natsPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload trackedEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal analytics message: %v", err)
		msg.Ack() // Ack malformed messages to prevent infinite retry
		return
	}

	userId, _ := payload.Payload["user_id"].(string)
	tracked := &entity.TrackedEvent{
		Id:         uuid.New(),
		UserId:     userId,
		EventType:  payload.Type,
		Properties: payload.Payload,
		CreatedAt:  payload.OccurredAt,
	}

	if err := cs.eventRepository.Create(ctx, tracked); err != nil {
		log.Printf("[ERROR] Failed to persist tracked event %s: %v", payload.Type, err)
		msg.Nack()
		return
	}

	// NATS forwarding is best-effort; the row is already durable.
	if cs.natsPublisher != nil {
		event := events.BaseEvent{
			Type:       payload.Type,
			Data:       payload.Payload,
			OccurredAt: payload.OccurredAt,
		}
		publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := cs.natsPublisher.Publish(publishCtx, event); err != nil {
			log.Printf("[WARN] Failed to forward event %s to NATS: %v", payload.Type, err)
		}
		cancel()
	}

	msg.Ack()
}
