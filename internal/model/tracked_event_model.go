package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TrackedEvent struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     string         `gorm:"type:text;index"`
	EventType  string         `gorm:"type:text;not null;index"`
	Properties datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (TrackedEvent) TableName() string {
	return "tracked_events"
}
