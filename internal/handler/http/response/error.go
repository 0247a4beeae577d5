package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidStatusFilter):
		BadRequest(w, err.Error(), nil)

	// Appraisal domain errors
	case errors.Is(err, appraisal.ErrAppraisalNotFound):
		NotFound(w, "Appraisal not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for today")
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Notification errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrInvalidKind):
		ValidationError(w, map[string]string{"type": err.Error()})
	case errors.Is(err, notification.ErrClosed):
		ServiceUnavailable(w, "Notifications are shutting down")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
