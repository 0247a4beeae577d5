package attendance

import (
	"context"
	"io"
	"iter"
	"time"
)

type AttendanceService interface {
	MarkToday(ctx context.Context, req MarkAttendanceRequest) (Record, error)
	GetToday(ctx context.Context) (Record, bool)
	ListAttendance(ctx context.Context) (ListAttendanceResponse, error)
	GetStats(ctx context.Context) (Stats, error)
	Calendar(ctx context.Context, year int, month time.Month) iter.Seq[DayCell]
	GetCalendar(ctx context.Context, filter CalendarFilter) (CalendarResponse, error)
	WriteMonthlyReport(ctx context.Context, w io.Writer, filter CalendarFilter) error
}
