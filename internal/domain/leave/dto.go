package leave

import (
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	Type      string `json:"type"`
}

// Validate checks the form rules against today, the first day a leave may start.
func (r *ApplyLeaveRequest) Validate(today time.Time) error {
	var errs validator.ValidationErrors

	if r.Type == "" {
		r.Type = string(LeaveTypeCasual)
	}
	if !validator.IsInSlice(r.Type, LeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of casual, sick, vacation, personal",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if startOK {
		todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		if start.Before(todayDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "Start date cannot be in the past",
			})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "End date cannot be before start date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Please provide a reason for your leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	Status *string
}

func (f LeaveRequestFilter) Validate() error {
	if f.Status != nil && !validator.IsInSlice(*f.Status, LeaveRequestStatuses) {
		return ErrInvalidStatusFilter
	}
	return nil
}

type LeaveRequestResponse struct {
	LeaveRequest
	Days int `json:"days"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{LeaveRequest: l, Days: l.Days()}
}

type ListLeaveRequestResponse struct {
	TotalCount    int                    `json:"totalCount"`
	Counts        StatusCounts           `json:"counts"`
	LeaveRequests []LeaveRequestResponse `json:"leaveRequests"`
}
