package contract

import (
	"context"

	"woodshop-assistant-be/internal/entity"
)

// HandshakeStore correlates a first-phase retrieval context with the later
// second-phase citation call. Entries are keyed per session and expire on a
// TTL; staging the same key twice overwrites the previous entry.
type HandshakeStore interface {
	Stage(ctx context.Context, key string, entry *entity.HandshakeEntry) error

	// Consume returns the staged entry and clears it. A missing or expired
	// entry yields (nil, nil).
	Consume(ctx context.Context, key string) (*entity.HandshakeEntry, error)

	Clear(ctx context.Context, key string) error
}
