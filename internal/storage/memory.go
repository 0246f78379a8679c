package storage

import (
	"context"
	"sync"
)

type MemoryStore struct {
	data map[string]map[string]string
	mu   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (map[string]string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fields, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	// Hand out a copy so callers cannot mutate the cached entry.
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, fields map[string]string) error {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = cp
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
