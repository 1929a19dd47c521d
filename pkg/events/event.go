package events

import "time"

// Event is the contract for everything published on the analytics bus.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_ANSWERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeChatAnswered       = "CHAT_ANSWERED"
	TypeChatRefused        = "CHAT_REFUSED"
	TypeCitationsExtracted = "CITATIONS_EXTRACTED"
)

// NewChatAnswered records a completed answer. The raw question and answer are
// never included; only shape metadata leaves the request path.
func NewChatAnswered(userId, sessionKey, label string, documentCount, answerLength int) BaseEvent {
	return BaseEvent{
		Type: TypeChatAnswered,
		Data: map[string]interface{}{
			"user_id":        userId,
			"session_key":    sessionKey,
			"label":          label,
			"document_count": documentCount,
			"answer_length":  answerLength,
		},
		OccurredAt: time.Now(),
	}
}

func NewChatRefused(userId, sessionKey string) BaseEvent {
	return BaseEvent{
		Type: TypeChatRefused,
		Data: map[string]interface{}{
			"user_id":     userId,
			"session_key": sessionKey,
		},
		OccurredAt: time.Now(),
	}
}

func NewCitationsExtracted(sessionKey string, referenceCount, productCount int) BaseEvent {
	return BaseEvent{
		Type: TypeCitationsExtracted,
		Data: map[string]interface{}{
			"session_key":     sessionKey,
			"reference_count": referenceCount,
			"product_count":   productCount,
		},
		OccurredAt: time.Now(),
	}
}
