package slot

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
)

// Singleton mirrors a single record to a slot, falling back to a default value.
type Singleton[T any] struct {
	mu       sync.RWMutex
	name     string
	storage  storage.Storage
	metrics  *metrics.Metrics
	fallback func() T
	value    T
	loaded   bool
}

func NewSingleton[T any](name string, st storage.Storage, m *metrics.Metrics, fallback func() T) *Singleton[T] {
	return &Singleton[T]{
		name:     name,
		storage:  st,
		metrics:  m,
		fallback: fallback,
		value:    fallback(),
	}
}

// Load reads the slot. An absent, unreadable or malformed slot yields the default.
func (s *Singleton[T]) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = s.read(ctx)
	s.loaded = true
}

func (s *Singleton[T]) read(ctx context.Context) T {
	data, err := s.storage.Read(ctx, s.name)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("Slot unreadable, using default", "slot", s.name, "error", err)
			s.metrics.SlotCorrupt(s.name)
		}
		return s.fallback()
	}

	// JSON null decodes without error into the zero value; treat it as absent.
	var decoded *T
	if err := json.Unmarshal(data, &decoded); err != nil || decoded == nil {
		slog.Warn("Slot malformed, using default", "slot", s.name, "error", err)
		s.metrics.SlotCorrupt(s.name)
		return s.fallback()
	}
	return *decoded
}

func (s *Singleton[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Replace swaps the whole value and persists it.
func (s *Singleton[T]) Replace(ctx context.Context, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	return writeSlot(ctx, s.storage, s.metrics, s.name, s.value)
}

// Update merges changes through fn and persists the result.
func (s *Singleton[T]) Update(ctx context.Context, fn func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.value)
	return s.value, writeSlot(ctx, s.storage, s.metrics, s.name, s.value)
}
