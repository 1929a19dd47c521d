package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"woodshop-assistant-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventHandler processes one event; a non-nil error triggers redelivery.
type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber drains the EVENTS stream with a durable consumer. It owns its
// own connection so a worker process can run apart from the API.
type Subscriber struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewSubscriber(url string) (*Subscriber, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Subscriber{nc: nc, js: js}, nil
}

// Consume blocks draining subject until ctx is cancelled. The durable name
// pins consumer progress across worker restarts. A handler error leaves the
// message unacked for redelivery; a payload that cannot parse is dropped,
// since it would otherwise redeliver forever.
func (s *Subscriber) Consume(ctx context.Context, subject, durable string, handler EventHandler) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, "EVENTS", jetstream.ConsumerConfig{
		Durable:       durable,
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", durable, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		s.dispatch(ctx, msg, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming %s: %w", subject, err)
	}

	<-ctx.Done()
	consumeCtx.Stop()
	return nil
}

func (s *Subscriber) dispatch(ctx context.Context, msg jetstream.Msg, handler EventHandler) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Data(), &payload); err != nil {
		msg.Ack()
		return
	}

	event := events.BaseEvent{
		Type:       strings.TrimPrefix(msg.Subject(), "events."),
		Data:       payload,
		OccurredAt: time.Now(),
	}

	if err := handler(ctx, event); err != nil {
		msg.Nak()
		return
	}
	msg.Ack()
}

func (s *Subscriber) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
