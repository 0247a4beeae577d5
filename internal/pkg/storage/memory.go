package storage

import (
	"context"
	"sync"
)

// MemoryStorage is a process-local Storage used in tests and for ephemeral runs.
type MemoryStorage struct {
	mu       sync.RWMutex
	slots    map[string][]byte
	writeErr error
	writes   map[string]int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		slots:  make(map[string][]byte),
		writes: make(map[string]int),
	}
}

func (s *MemoryStorage) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStorage) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	s.slots[key] = buf
	s.writes[key]++
	return nil
}

func (s *MemoryStorage) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.slots[key]
	return ok, nil
}

func (s *MemoryStorage) Close() error { return nil }

// FailWrites makes every subsequent Write return err; nil restores normal behaviour.
func (s *MemoryStorage) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Seed stores raw bytes in a slot without counting a write.
func (s *MemoryStorage) Seed(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = data
}

// WriteCount returns how many successful writes a slot received.
func (s *MemoryStorage) WriteCount(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes[key]
}
