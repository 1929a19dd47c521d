package memory

import (
	"context"
	"testing"
	"time"

	"woodshop-assistant-be/internal/entity"
)

func TestStageAndConsume(t *testing.T) {
	store := NewHandshakeStore(time.Minute)
	ctx := context.Background()

	entry := &entity.HandshakeEntry{Context: "Source: Workshop Basics", Query: "chisel sharpening"}
	if err := store.Stage(ctx, "session-1", entry); err != nil {
		t.Fatalf("Stage() error: %v", err)
	}

	got, err := store.Consume(ctx, "session-1")
	if err != nil {
		t.Fatalf("Consume() error: %v", err)
	}
	if got == nil || got.Context != entry.Context || got.Query != entry.Query {
		t.Errorf("Consume() = %+v, want staged entry back", got)
	}
}

func TestConsumeClearsEntry(t *testing.T) {
	store := NewHandshakeStore(time.Minute)
	ctx := context.Background()

	store.Stage(ctx, "session-1", &entity.HandshakeEntry{Context: "ctx", Query: "q"})
	store.Consume(ctx, "session-1")

	got, err := store.Consume(ctx, "session-1")
	if err != nil {
		t.Fatalf("Consume() error: %v", err)
	}
	if got != nil {
		t.Errorf("second Consume() = %+v, want nil (entry cleared on first use)", got)
	}
}

func TestStageOverwritesSameKey(t *testing.T) {
	store := NewHandshakeStore(time.Minute)
	ctx := context.Background()

	store.Stage(ctx, "session-1", &entity.HandshakeEntry{Context: "first", Query: "q1"})
	store.Stage(ctx, "session-1", &entity.HandshakeEntry{Context: "second", Query: "q2"})

	got, _ := store.Consume(ctx, "session-1")
	if got == nil || got.Context != "second" {
		t.Errorf("Consume() after re-stage = %+v, want the second entry", got)
	}
}

func TestDistinctKeysAreIndependent(t *testing.T) {
	store := NewHandshakeStore(time.Minute)
	ctx := context.Background()

	store.Stage(ctx, "session-1", &entity.HandshakeEntry{Context: "one", Query: "q1"})
	store.Stage(ctx, "session-2", &entity.HandshakeEntry{Context: "two", Query: "q2"})

	got1, _ := store.Consume(ctx, "session-1")
	got2, _ := store.Consume(ctx, "session-2")

	if got1 == nil || got1.Context != "one" {
		t.Errorf("session-1 entry = %+v, want context %q", got1, "one")
	}
	if got2 == nil || got2.Context != "two" {
		t.Errorf("session-2 entry = %+v, want context %q", got2, "two")
	}
}

func TestEntriesExpire(t *testing.T) {
	store := NewHandshakeStore(20 * time.Millisecond)
	ctx := context.Background()

	store.Stage(ctx, "session-1", &entity.HandshakeEntry{Context: "stale", Query: "q"})
	time.Sleep(40 * time.Millisecond)

	got, err := store.Consume(ctx, "session-1")
	if err != nil {
		t.Fatalf("Consume() error: %v", err)
	}
	if got != nil {
		t.Errorf("Consume() after TTL = %+v, want nil", got)
	}
}

func TestConsumeUnknownKey(t *testing.T) {
	store := NewHandshakeStore(time.Minute)

	got, err := store.Consume(context.Background(), "never-staged")
	if err != nil {
		t.Fatalf("Consume() error: %v", err)
	}
	if got != nil {
		t.Errorf("Consume() = %+v, want nil for unknown key", got)
	}
}
