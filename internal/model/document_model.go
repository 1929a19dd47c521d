package model

import (
	"github.com/pgvector/pgvector-go"
)

// Document is a transcript chunk row in a vector-indexed table. The table
// name is chosen per request from the configured allow-list; "bents" is the
// default mapping for seeds.
type Document struct {
	Id      string          `gorm:"type:text;primaryKey"`
	Text    string          `gorm:"type:text"`
	Title   string          `gorm:"type:text"`
	Url     string          `gorm:"type:text"`
	ChunkId string          `gorm:"column:chunk_id;type:text"`
	Vector  pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-ada-002 uses 1536 dimensions
}

func (Document) TableName() string {
	return "bents"
}
