package nats

import (
	"context"
	"errors"
	"testing"

	"woodshop-assistant-be/pkg/events"

	"github.com/nats-io/nats.go/jetstream"
)

type fakeMsg struct {
	jetstream.Msg
	subject string
	data    []byte
	acked   bool
	naked   bool
}

func (m *fakeMsg) Subject() string { return m.subject }
func (m *fakeMsg) Data() []byte    { return m.data }
func (m *fakeMsg) Ack() error      { m.acked = true; return nil }
func (m *fakeMsg) Nak() error      { m.naked = true; return nil }

func TestDispatchAcksAndTrimsSubject(t *testing.T) {
	msg := &fakeMsg{
		subject: "events.CHAT_ANSWERED",
		data:    []byte(`{"user_id":"user_1","document_count":3}`),
	}

	var got events.Event
	(&Subscriber{}).dispatch(context.Background(), msg, func(ctx context.Context, event events.Event) error {
		got = event
		return nil
	})

	if !msg.acked || msg.naked {
		t.Fatalf("acked = %v, naked = %v, want ack only", msg.acked, msg.naked)
	}
	if got.EventType() != "CHAT_ANSWERED" {
		t.Errorf("event type = %q, want %q", got.EventType(), "CHAT_ANSWERED")
	}
	if got.Payload()["user_id"] != "user_1" {
		t.Errorf("payload user_id = %v, want user_1", got.Payload()["user_id"])
	}
}

func TestDispatchNaksOnHandlerError(t *testing.T) {
	msg := &fakeMsg{subject: "events.CHAT_REFUSED", data: []byte(`{}`)}

	(&Subscriber{}).dispatch(context.Background(), msg, func(ctx context.Context, event events.Event) error {
		return errors.New("sink unavailable")
	})

	if !msg.naked || msg.acked {
		t.Fatalf("acked = %v, naked = %v, want nak only", msg.acked, msg.naked)
	}
}

func TestDispatchDropsMalformedPayload(t *testing.T) {
	msg := &fakeMsg{subject: "events.CHAT_ANSWERED", data: []byte(`not json`)}

	handled := false
	(&Subscriber{}).dispatch(context.Background(), msg, func(ctx context.Context, event events.Event) error {
		handled = true
		return nil
	})

	if handled {
		t.Error("handler must not run for a malformed payload")
	}
	if !msg.acked || msg.naked {
		t.Fatalf("acked = %v, naked = %v, want ack only", msg.acked, msg.naked)
	}
}
