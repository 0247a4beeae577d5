package notification

import (
	"time"
)

// Kind is the visual category of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindInfo:
		return true
	}
	return false
}

// Notification is a transient user-facing message. It is never persisted and
// disappears on dismissal or when ExpiresAt passes, whichever comes first.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SSE event names published for every queue change.
const (
	EventShown     = "notification.shown"
	EventDismissed = "notification.dismissed"
	EventExpired   = "notification.expired"
)

// Topic is the SSE hub topic carrying notification events.
const Topic = "notifications"
