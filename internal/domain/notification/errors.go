package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidKind          = errors.New("invalid notification type")
	ErrClosed               = errors.New("notification store closed")
)
