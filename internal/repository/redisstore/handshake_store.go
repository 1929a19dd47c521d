package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "handshake:"

// HandshakeStore is the Redis-backed staging area, for deployments where the
// first- and second-phase calls may land on different instances.
type HandshakeStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewHandshakeStore(rdb *redis.Client, ttl time.Duration) *HandshakeStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &HandshakeStore{
		rdb: rdb,
		ttl: ttl,
	}
}

var _ contract.HandshakeStore = &HandshakeStore{}

func (s *HandshakeStore) Stage(ctx context.Context, key string, entry *entity.HandshakeEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+key, data, s.ttl).Err()
}

func (s *HandshakeStore) Consume(ctx context.Context, key string) (*entity.HandshakeEntry, error) {
	data, err := s.rdb.GetDel(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entry entity.HandshakeEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *HandshakeStore) Clear(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, keyPrefix+key).Err()
}
