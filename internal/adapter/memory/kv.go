// Package memory implements an in-process key-value store. It backs the
// "memory" storage driver and is used in tests of higher layers.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// KV is a map-backed key-value store safe for concurrent use.
type KV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewKV creates an empty store.
func NewKV() *KV {
	return &KV{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key, or domain.ErrNotFound.
func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("kv %s: %w", key, domain.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

// Set overwrites the value stored under key.
func (s *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Ping always succeeds.
func (s *KV) Ping(ctx context.Context) error {
	return ctx.Err()
}
