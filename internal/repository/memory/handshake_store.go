package memory

import (
	"context"
	"time"

	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// HandshakeStore is the in-process staging area for pending citation
// handshakes. Entries expire after the TTL so a never-answered first phase
// cannot be consumed by an unrelated later call.
type HandshakeStore struct {
	cache *cache.Cache
}

func NewHandshakeStore(ttl time.Duration) *HandshakeStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &HandshakeStore{
		cache: cache.New(ttl, 5*time.Minute),
	}
}

var _ contract.HandshakeStore = &HandshakeStore{}

func (s *HandshakeStore) Stage(_ context.Context, key string, entry *entity.HandshakeEntry) error {
	s.cache.Set(key, entry, cache.DefaultExpiration)
	return nil
}

func (s *HandshakeStore) Consume(_ context.Context, key string) (*entity.HandshakeEntry, error) {
	x, found := s.cache.Get(key)
	if !found {
		return nil, nil
	}
	s.cache.Delete(key)
	return x.(*entity.HandshakeEntry), nil
}

func (s *HandshakeStore) Clear(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
