package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackedEvent is one analytics event captured from the chat pipeline.
type TrackedEvent struct {
	Id         uuid.UUID
	UserId     string
	EventType  string
	Properties map[string]interface{}
	CreatedAt  time.Time
}
