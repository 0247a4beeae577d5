// Package slot keeps each record collection in memory and mirrors it to a
// durable-storage slot after every mutation.
package slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/collection"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
)

// Slot names, compatible with the keys written by earlier portal versions.
const (
	LeavesSlot     = "employeeLeaves"
	AppraisalsSlot = "employeeAppraisals"
	AttendanceSlot = "employeeAttendance"
	ProfileSlot    = "employeeProfile"
)

// Slots lists every slot the portal keeps.
var Slots = []string{LeavesSlot, AppraisalsSlot, AttendanceSlot, ProfileSlot}

// Inventory reports which slots already hold data and logs the result, so a
// store that starts empty can be told apart from one whose slot was unreadable.
func Inventory(ctx context.Context, st storage.Storage) map[string]bool {
	present := make(map[string]bool, len(Slots))
	for _, name := range Slots {
		ok, err := st.Exists(ctx, name)
		if err != nil {
			slog.Warn("Slot existence check failed", "slot", name, "error", err)
			continue
		}
		present[name] = ok
		slog.Info("Slot inventory", "slot", name, "present", ok)
	}
	return present
}

// ErrNotPersisted is returned when a mutation was applied in memory but the
// slot write failed. The in-memory state keeps the mutation.
var ErrNotPersisted = storage.ErrNotPersisted

// Store owns one keyed collection and the slot it is mirrored to.
type Store[K comparable, T any] struct {
	mu      sync.RWMutex
	name    string
	storage storage.Storage
	metrics *metrics.Metrics
	items   *collection.Collection[K, T]
	loaded  bool
}

func NewStore[K comparable, T any](name string, st storage.Storage, m *metrics.Metrics, keyOf func(T) K) *Store[K, T] {
	return &Store[K, T]{
		name:    name,
		storage: st,
		metrics: m,
		items:   collection.New(keyOf),
	}
}

func (s *Store[K, T]) Name() string { return s.name }

// Load replaces the in-memory collection with the slot contents. An absent,
// unreadable or malformed slot yields an empty collection.
func (s *Store[K, T]) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items.Reset(s.read(ctx))
	s.loaded = true
	slog.Debug("Slot loaded", "slot", s.name, "records", s.items.Len())
}

func (s *Store[K, T]) read(ctx context.Context) []T {
	data, err := s.storage.Read(ctx, s.name)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("Slot unreadable, starting empty", "slot", s.name, "error", err)
			s.metrics.SlotCorrupt(s.name)
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("Slot malformed, starting empty", "slot", s.name, "error", err)
		s.metrics.SlotCorrupt(s.name)
		return nil
	}
	return items
}

// List returns a snapshot in insertion order.
func (s *Store[K, T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Items()
}

func (s *Store[K, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Len()
}

func (s *Store[K, T]) Get(key K) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Get(key)
}

func (s *Store[K, T]) Find(pred func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Find(pred)
}

// Add appends rec and persists the collection. Keys are not checked for uniqueness.
func (s *Store[K, T]) Add(ctx context.Context, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items.Append(rec)
	return s.persist(ctx)
}

// AddIfAbsent appends rec only when no record shares its key. The check and
// the append happen under one lock.
func (s *Store[K, T]) AddIfAbsent(ctx context.Context, key K, rec T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items.Contains(key) {
		return false, nil
	}
	s.items.Append(rec)
	return true, s.persist(ctx)
}

// Update applies fn to the records with key. Nothing is written when the key is unknown.
func (s *Store[K, T]) Update(ctx context.Context, key K, fn func(*T)) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.items.Update(key, fn) {
		var zero T
		return zero, false, nil
	}
	updated, _ := s.items.Get(key)
	return updated, true, s.persist(ctx)
}

// Remove deletes the records with key. Nothing is written when the key is unknown.
func (s *Store[K, T]) Remove(ctx context.Context, key K) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items.Remove(key) == 0 {
		return false, nil
	}
	return true, s.persist(ctx)
}

// persist writes the whole collection. Callers hold s.mu.
func (s *Store[K, T]) persist(ctx context.Context) error {
	return writeSlot(ctx, s.storage, s.metrics, s.name, s.items.Items())
}

func writeSlot(ctx context.Context, st storage.Storage, m *metrics.Metrics, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		m.SlotWriteFailed(name)
		slog.Error("Slot encode failed", "slot", name, "error", err)
		return fmt.Errorf("%w: encode %s: %w", ErrNotPersisted, name, err)
	}
	if err := st.Write(ctx, name, data); err != nil {
		m.SlotWriteFailed(name)
		slog.Error("Slot write failed", "slot", name, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrNotPersisted, name, err)
	}
	m.SlotWritten(name)
	return nil
}
