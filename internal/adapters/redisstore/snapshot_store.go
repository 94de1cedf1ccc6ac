// Package redisstore implements the snapshot store on Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/example/kanban/internal/ports/secondary"
)

const keyPrefix = "kanban:snapshot:"

// SnapshotStore keeps each slot as a plain string key with no expiry.
type SnapshotStore struct {
	client *redis.Client
}

// NewSnapshotStore wraps an existing client.
func NewSnapshotStore(client *redis.Client) (*SnapshotStore, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	return &SnapshotStore{client: client}, nil
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr string) (*SnapshotStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewSnapshotStore(client)
}

// Load reads the slot key.
func (s *SnapshotStore) Load(ctx context.Context, slot string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+slot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, secondary.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Save overwrites the slot key.
func (s *SnapshotStore) Save(ctx context.Context, slot string, payload []byte) error {
	if err := s.client.Set(ctx, keyPrefix+slot, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// ListSlots scans for snapshot keys and returns their slot names, sorted.
func (s *SnapshotStore) ListSlots(ctx context.Context) ([]string, error) {
	var slots []string
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		slots = append(slots, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	sort.Strings(slots)
	return slots, nil
}

// Delete removes the slot key.
func (s *SnapshotStore) Delete(ctx context.Context, slot string) error {
	if err := s.client.Del(ctx, keyPrefix+slot).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *SnapshotStore) Close() error {
	return s.client.Close()
}

var _ secondary.SlotStore = (*SnapshotStore)(nil)
