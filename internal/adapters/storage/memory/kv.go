package memory

import (
	"context"
	"fmt"
	"sync"

	"dog-license-application/internal/domain/applications"
)

type kvStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore crea un almacén clave-valor en memoria (tests/dev).
func NewKVStore() applications.Store {
	return &kvStore{
		data: make(map[string][]byte),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, applications.ErrNotFound)
	}

	// Copia defensiva: el caller no debe poder mutar lo guardado.
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *kvStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
