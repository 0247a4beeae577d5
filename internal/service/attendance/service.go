package attendance

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/profile"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	profiles profile.ProfileRepository
	notifier notification.Notifier
	now      func() time.Time
}

// NewAttendanceService builds the attendance service. now must return the
// current time in the portal time zone; it decides which calendar day is today.
func NewAttendanceService(repo attendance.AttendanceRepository, profiles profile.ProfileRepository, notifier notification.Notifier, now func() time.Time) attendance.AttendanceService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		profiles:             profiles,
		notifier:             notifier,
		now:                  now,
	}
}

// MarkToday implements attendance.AttendanceService. A second mark on the
// same day is rejected with attendance.ErrAlreadyMarked and changes nothing.
func (s *AttendanceServiceImpl) MarkToday(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, notification.Reject(s.notifier, err)
	}

	record := attendance.NewRecord(s.now(), attendance.Status(req.Status))
	added, err := s.AttendanceRepository.CreateIfAbsent(ctx, record)
	if !added && err == nil {
		return attendance.Record{}, notification.Reject(s.notifier, attendance.ErrAlreadyMarked)
	}

	msg := fmt.Sprintf("Attendance marked as %s for today", record.Status)
	if err := notification.Announce(s.notifier, err, msg); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	slog.Info("Attendance marked", "date", record.Date, "status", record.Status)
	return record, nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.Record, bool) {
	return s.AttendanceRepository.GetByDate(ctx, s.now().Format(attendance.DateLayout))
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context) (attendance.ListAttendanceResponse, error) {
	records := s.AttendanceRepository.List(ctx)
	return attendance.ListAttendanceResponse{
		TotalCount: len(records),
		Records:    records,
	}, nil
}

// GetStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStats(ctx context.Context) (attendance.Stats, error) {
	return attendance.ComputeStats(s.AttendanceRepository.List(ctx)), nil
}

// Calendar implements attendance.AttendanceService. The records are read when
// the sequence is built; every iteration rebuilds the grid from them.
func (s *AttendanceServiceImpl) Calendar(ctx context.Context, year int, month time.Month) iter.Seq[attendance.DayCell] {
	return attendance.CalendarGrid(s.AttendanceRepository.List(ctx), year, month, s.now())
}

// GetCalendar implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetCalendar(ctx context.Context, filter attendance.CalendarFilter) (attendance.CalendarResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.CalendarResponse{}, err
	}

	records := s.AttendanceRepository.List(ctx)
	cells := slices.Collect(attendance.CalendarGrid(records, filter.Year, time.Month(filter.Month), s.now()))

	return attendance.CalendarResponse{
		Year:  filter.Year,
		Month: filter.Month,
		Cells: cells,
		Stats: attendance.ComputeStats(records),
	}, nil
}
