package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type entry struct {
	payload   []byte
	updatedAt time.Time
}

type memory struct {
	mu     sync.RWMutex
	docs   map[string]entry
	logger *slog.Logger
}

// NewMemory creates a process-local store. Documents are held as encoded JSON
// so callers never share mutable state with the store.
func NewMemory(logger *slog.Logger) System {
	return &memory{
		docs:   make(map[string]entry),
		logger: logger.With("system", "docstore", "backend", SourceMemory),
	}
}

func (m *memory) Source() string {
	return SourceMemory
}

func (m *memory) Get(_ context.Context, collection, id string, dest any) (time.Time, error) {
	m.mu.RLock()
	e, ok := m.docs[key(collection, id)]
	m.mu.RUnlock()

	if !ok {
		return time.Time{}, ErrNotFound
	}
	if err := json.Unmarshal(e.payload, dest); err != nil {
		return time.Time{}, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return e.updatedAt, nil
}

func (m *memory) Put(_ context.Context, collection, id string, value any) (time.Time, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}

	now := time.Now().UTC()

	m.mu.Lock()
	m.docs[key(collection, id)] = entry{payload: payload, updatedAt: now}
	m.mu.Unlock()

	m.logger.Info("document stored", "collection", collection, "id", id, "bytes", len(payload))
	return now, nil
}

func (m *memory) Delete(_ context.Context, collection, id string) error {
	k := key(collection, id)

	m.mu.Lock()
	_, ok := m.docs[k]
	delete(m.docs, k)
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	m.logger.Info("document deleted", "collection", collection, "id", id)
	return nil
}

func key(collection, id string) string {
	return collection + "/" + id
}
