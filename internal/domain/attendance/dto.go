package attendance

import (
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	Status string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present or absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalendarFilter struct {
	Year  int
	Month int
}

func (f CalendarFilter) Validate() error {
	if f.Month < 1 || f.Month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

type CalendarResponse struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Cells []DayCell `json:"cells"`
	Stats Stats     `json:"stats"`
}

type ListAttendanceResponse struct {
	TotalCount int      `json:"totalCount"`
	Records    []Record `json:"records"`
}
