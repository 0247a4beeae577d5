package attendance

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/sse"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
	"github.com/cmlabs-hris/employee-portal-go/internal/repository/slot"
	notificationService "github.com/cmlabs-hris/employee-portal-go/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attendanceTestEnv struct {
	svc      attendance.AttendanceService
	mem      *storage.MemoryStorage
	notifier notification.Service
	clock    time.Time
}

func newAttendanceTestEnv(t *testing.T) *attendanceTestEnv {
	t.Helper()
	ctx := context.Background()
	env := &attendanceTestEnv{
		mem:   storage.NewMemoryStorage(),
		clock: time.Date(2025, 4, 15, 8, 45, 12, 0, time.UTC),
	}
	env.notifier = notificationService.NewNotificationService(sse.NewHub(), nil, notificationService.Config{TTL: time.Minute})
	t.Cleanup(env.notifier.Close)

	repo := slot.NewAttendanceRepository(ctx, env.mem, nil)
	profiles := slot.NewProfileRepository(ctx, env.mem, nil)
	env.svc = NewAttendanceService(repo, profiles, env.notifier, func() time.Time { return env.clock })
	return env
}

func (e *attendanceTestEnv) lastMessage() string {
	list := e.notifier.List()
	if len(list) == 0 {
		return ""
	}
	return list[len(list)-1].Message
}

func TestMarkToday_Present(t *testing.T) {
	env := newAttendanceTestEnv(t)

	rec, err := env.svc.MarkToday(context.Background(), attendance.MarkAttendanceRequest{Status: "present"})
	require.NoError(t, err)

	assert.Equal(t, "2025-04-15", rec.Date)
	require.NotNil(t, rec.CheckInTime)
	assert.Equal(t, "08:45:12", *rec.CheckInTime)
	assert.Equal(t, "Attendance marked as present for today", env.lastMessage())

	today, ok := env.svc.GetToday(context.Background())
	require.True(t, ok)
	assert.Equal(t, rec, today)
}

func TestMarkToday_SecondMarkRejected(t *testing.T) {
	env := newAttendanceTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.MarkToday(ctx, attendance.MarkAttendanceRequest{Status: "present"})
	require.NoError(t, err)

	_, err = env.svc.MarkToday(ctx, attendance.MarkAttendanceRequest{Status: "absent"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
	assert.Equal(t, "Attendance already marked for today", env.lastMessage())

	list, err := env.svc.ListAttendance(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
	assert.Equal(t, attendance.StatusPresent, list.Records[0].Status)
	assert.Equal(t, 1, env.mem.WriteCount(slot.AttendanceSlot))
}

func TestMarkToday_UsesServiceTimeZone(t *testing.T) {
	env := newAttendanceTestEnv(t)
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC on the 15th is already the 16th in UTC+7
	env.clock = time.Date(2025, 4, 15, 20, 0, 0, 0, time.UTC).In(jakarta)

	rec, err := env.svc.MarkToday(context.Background(), attendance.MarkAttendanceRequest{Status: "absent"})
	require.NoError(t, err)
	assert.Equal(t, "2025-04-16", rec.Date)
	assert.Nil(t, rec.CheckInTime)
}

func TestMarkToday_InvalidStatus(t *testing.T) {
	env := newAttendanceTestEnv(t)

	_, err := env.svc.MarkToday(context.Background(), attendance.MarkAttendanceRequest{Status: "late"})
	assert.Error(t, err)
	assert.Equal(t, 0, env.mem.WriteCount(slot.AttendanceSlot))
	assert.Equal(t, "status must be present or absent", env.lastMessage())
}

func TestMarkToday_PersistFailureKeepsRecord(t *testing.T) {
	env := newAttendanceTestEnv(t)
	env.mem.FailWrites(errors.New("quota exceeded"))

	_, err := env.svc.MarkToday(context.Background(), attendance.MarkAttendanceRequest{Status: "present"})
	require.NoError(t, err)

	_, ok := env.svc.GetToday(context.Background())
	assert.True(t, ok)
	assert.Equal(t, notification.NotPersistedMessage, env.lastMessage())
}

func TestStatsAndCalendar(t *testing.T) {
	env := newAttendanceTestEnv(t)
	ctx := context.Background()

	for i, status := range []string{"present", "present", "absent"} {
		env.clock = time.Date(2025, 4, i+1, 9, 0, 0, 0, time.UTC)
		_, err := env.svc.MarkToday(ctx, attendance.MarkAttendanceRequest{Status: status})
		require.NoError(t, err)
	}

	stats, err := env.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalDays)
	assert.Equal(t, 2, stats.PresentDays)
	assert.InDelta(t, 66.67, stats.AttendancePercentage, 0.01)

	cal, err := env.svc.GetCalendar(ctx, attendance.CalendarFilter{Year: 2025, Month: 4})
	require.NoError(t, err)
	require.Len(t, cal.Cells, 32)
	assert.True(t, cal.Cells[0].Blank)
	require.NotNil(t, cal.Cells[4].Record)
	assert.Equal(t, "2025-04-03", cal.Cells[4].Date)
	assert.Equal(t, attendance.StatusAbsent, cal.Cells[4].Record.Status)
	assert.True(t, cal.Cells[4].IsToday)

	grid := env.svc.Calendar(ctx, 2025, time.April)
	assert.Equal(t, cal.Cells, slices.Collect(grid))

	_, err = env.svc.GetCalendar(ctx, attendance.CalendarFilter{Year: 2025, Month: 13})
	assert.ErrorIs(t, err, attendance.ErrInvalidMonth)
}

func TestWriteMonthlyReport(t *testing.T) {
	env := newAttendanceTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.MarkToday(ctx, attendance.MarkAttendanceRequest{Status: "present"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.svc.WriteMonthlyReport(ctx, &buf, attendance.CalendarFilter{Year: 2025, Month: 4}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	assert.ErrorIs(t, env.svc.WriteMonthlyReport(ctx, &buf, attendance.CalendarFilter{Year: 2025}), attendance.ErrInvalidMonth)
}
