package notification

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/sse"
	"github.com/google/uuid"
)

// Config holds notification service configuration
type Config struct {
	TTL time.Duration // default: 5 seconds
}

type service struct {
	hub     *sse.Hub
	metrics *metrics.Metrics
	ttl     time.Duration

	mu     sync.Mutex
	queue  []notification.Notification
	timers map[string]*time.Timer
	closed bool
}

// NewNotificationService creates the in-memory notification queue. Every
// change is published on the hub under notification.Topic.
func NewNotificationService(hub *sse.Hub, m *metrics.Metrics, cfg Config) notification.Service {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Second
	}
	return &service{
		hub:     hub,
		metrics: m,
		ttl:     cfg.TTL,
		timers:  make(map[string]*time.Timer),
	}
}

func (s *service) Show(kind notification.Kind, message string) (notification.Notification, error) {
	if !kind.Valid() {
		return notification.Notification{}, notification.ErrInvalidKind
	}

	id, err := uuid.NewV7()
	if err != nil {
		return notification.Notification{}, err
	}
	now := time.Now()
	n := notification.Notification{
		ID:        id.String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return notification.Notification{}, notification.ErrClosed
	}
	s.queue = append(s.queue, n)
	// Shown must precede any expiry or dismissal of this id.
	s.publish(notification.EventShown, n)
	s.timers[n.ID] = time.AfterFunc(s.ttl, func() { s.expire(n.ID) })
	s.mu.Unlock()

	s.metrics.NotificationShown(string(kind))
	slog.Debug("Notification shown", "id", n.ID, "type", kind)
	return n, nil
}

func (s *service) Dismiss(id string) bool {
	s.mu.Lock()
	timer, ok := s.timers[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	timer.Stop()
	n := s.removeLocked(id)
	s.mu.Unlock()

	s.publish(notification.EventDismissed, n)
	return true
}

// expire runs on the timer goroutine. A dismissed or closed notification is
// no longer in timers, which makes a late callback a no-op.
func (s *service) expire(id string) {
	s.mu.Lock()
	if _, ok := s.timers[id]; !ok {
		s.mu.Unlock()
		return
	}
	n := s.removeLocked(id)
	s.mu.Unlock()

	s.publish(notification.EventExpired, n)
}

func (s *service) removeLocked(id string) notification.Notification {
	delete(s.timers, id)
	var removed notification.Notification
	s.queue = slices.DeleteFunc(s.queue, func(n notification.Notification) bool {
		if n.ID == id {
			removed = n
			return true
		}
		return false
	})
	return removed
}

func (s *service) List() []notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.queue)
}

func (s *service) Subscribe() (<-chan sse.Event, func()) {
	return s.hub.Subscribe(notification.Topic)
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.queue = nil
	slog.Info("Notification queue closed")
}

func (s *service) publish(event string, n notification.Notification) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(notification.Topic, sse.Event{Event: event, Data: n})
}
