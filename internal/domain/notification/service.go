package notification

import (
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/sse"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/validator"
)

// Service is the in-memory notification queue.
type Service interface {
	// Show queues a notification and schedules its expiry.
	Show(kind Kind, message string) (Notification, error)
	// Dismiss removes a notification and cancels its expiry. It reports false
	// when the id is unknown, already dismissed or expired.
	Dismiss(id string) bool
	// List returns the queue in creation order.
	List() []Notification

	Subscribe() (<-chan sse.Event, func())

	// Close clears the queue and stops every pending expiry.
	Close()
}

// Notifier is the narrow view services use to report outcomes.
type Notifier interface {
	Show(kind Kind, message string) (Notification, error)
}

// NotPersistedMessage is shown when a change could only be applied in memory.
const NotPersistedMessage = "Your changes were applied but could not be saved"

// Announce reports the outcome of a mutation. A nil err or a failed slot write
// shows success; the latter also shows an error and is swallowed so the caller
// reports the in-memory change. Any other err is returned untouched.
func Announce(n Notifier, err error, success string) error {
	if err != nil && !errors.Is(err, storage.ErrNotPersisted) {
		return err
	}
	if n == nil {
		return nil
	}
	_, _ = n.Show(KindSuccess, success)
	if err != nil {
		slog.Warn("Change not persisted", "error", err)
		_, _ = n.Show(KindError, NotPersistedMessage)
	}
	return nil
}

// Reject shows the first validation message, or err itself, as an error
// notification and returns err.
func Reject(n Notifier, err error) error {
	if n == nil || err == nil {
		return err
	}
	msg := err.Error()
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		msg = verrs[0].Message
	}
	_, _ = n.Show(KindError, msg)
	return err
}
