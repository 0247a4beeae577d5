package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/notification"
)

const reminderMessage = "You have not marked your attendance for today"

type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	notifier      notification.Notifier
	now           func() time.Time
	interval      time.Duration

	mu           sync.Mutex
	lastReminder string
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, notifier notification.Notifier, now func() time.Time, interval time.Duration) *AttendanceJobs {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		notifier:      notifier,
		now:           now,
		interval:      interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("remind_unmarked_attendance", j.interval, j.RemindUnmarked)
}

// RemindUnmarked shows an info notification when today has no attendance
// record. It reminds at most once per calendar day.
func (j *AttendanceJobs) RemindUnmarked(ctx context.Context) error {
	today := j.now().Format(attendance.DateLayout)

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.lastReminder == today {
		return nil
	}
	if _, marked := j.attendanceSvc.GetToday(ctx); marked {
		return nil
	}

	if _, err := j.notifier.Show(notification.KindInfo, reminderMessage); err != nil {
		return fmt.Errorf("failed to show attendance reminder: %w", err)
	}
	j.lastReminder = today
	slog.Info("Cron: attendance reminder shown", "date", today)
	return nil
}
