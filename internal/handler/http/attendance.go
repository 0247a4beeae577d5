package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

// NewAttendanceHandler creates the attendance handler. now picks the default
// month for calendar and report requests.
func NewAttendanceHandler(attendanceService attendance.AttendanceService, now func() time.Time) AttendanceHandler {
	if now == nil {
		now = time.Now
	}
	return &attendanceHandlerImpl{attendanceService: attendanceService, now: now}
}

// List handles GET /attendance
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Records, &response.Meta{TotalItems: result.TotalCount})
}

// Today handles GET /attendance/today. Data is null when today is unmarked.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	record, ok := h.attendanceService.GetToday(r.Context())
	if !ok {
		response.Success(w, nil)
		return
	}
	response.Success(w, record)
}

// Mark handles POST /attendance
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.MarkToday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, fmt.Sprintf("Attendance marked as %s for today", record.Status), record)
}

// Stats handles GET /attendance/stats
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Calendar handles GET /attendance/calendar?year=2025&month=4
func (h *attendanceHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseCalendarFilter(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.GetCalendar(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Report handles GET /attendance/report.pdf?year=2025&month=4
func (h *attendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseCalendarFilter(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.attendanceService.WriteMonthlyReport(r.Context(), &buf, filter); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.pdf", filter.Year, filter.Month)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write attendance report", "error", err)
	}
}

// parseCalendarFilter reads year and month, defaulting to the current month.
func (h *attendanceHandlerImpl) parseCalendarFilter(w http.ResponseWriter, r *http.Request) (attendance.CalendarFilter, bool) {
	now := h.now()
	filter := attendance.CalendarFilter{Year: now.Year(), Month: int(now.Month())}

	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return filter, false
		}
		filter.Year = year
	}
	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return filter, false
		}
		filter.Month = month
	}
	return filter, true
}
