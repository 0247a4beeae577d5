package attendance

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/jung-kurt/gofpdf"
)

// WriteMonthlyReport implements attendance.AttendanceService. It renders the
// month's day-by-day attendance and its statistics as a PDF.
func (s *AttendanceServiceImpl) WriteMonthlyReport(ctx context.Context, w io.Writer, filter attendance.CalendarFilter) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	month := time.Month(filter.Month)
	var monthRecords []attendance.Record
	prefix := fmt.Sprintf("%04d-%02d-", filter.Year, filter.Month)
	for _, r := range s.AttendanceRepository.List(ctx) {
		if strings.HasPrefix(r.Date, prefix) {
			monthRecords = append(monthRecords, r)
		}
	}
	stats := attendance.ComputeStats(monthRecords)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Attendance %s %d", month, filter.Year), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Attendance Report - %s %d", month, filter.Year))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if s.profiles != nil {
		p := s.profiles.Get(ctx)
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s, %s)", p.Name, p.Role, p.Department))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Total days: %d   Present: %d   Absent: %d   Attendance: %.1f%%",
		stats.TotalDays, stats.PresentDays, stats.AbsentDays, stats.AttendancePercentage))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(35, 8, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Day", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Check-in", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for cell := range attendance.CalendarGrid(monthRecords, filter.Year, month, s.now()) {
		if cell.Blank {
			continue
		}
		status, checkIn := "-", "-"
		if cell.Record != nil {
			status = string(cell.Record.Status)
			if cell.Record.CheckInTime != nil {
				checkIn = *cell.Record.CheckInTime
			}
		}
		weekday := time.Date(filter.Year, month, cell.Day, 0, 0, 0, 0, time.UTC).Weekday()
		pdf.CellFormat(35, 7, cell.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, weekday.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, checkIn, "1", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render attendance report: %w", err)
	}
	return nil
}
