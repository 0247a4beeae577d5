package notification

import "github.com/cmlabs-hris/employee-portal-go/internal/pkg/validator"

type ShowNotificationRequest struct {
	Kind    string `json:"type"`
	Message string `json:"message"`
}

func (r *ShowNotificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Kind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of success, error, info",
		})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
}
