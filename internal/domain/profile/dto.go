package profile

import "github.com/cmlabs-hris/employee-portal-go/internal/pkg/validator"

// UpdateProfileRequest is a partial update; nil fields keep their current value.
type UpdateProfileRequest struct {
	Name       *string  `json:"name,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Department *string  `json:"department,omitempty"`
	JoinDate   *string  `json:"joinDate,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	Age        *float64 `json:"age,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Address    *string  `json:"address,omitempty"`
	ImageURL   *string  `json:"imageUrl,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joinDate",
				Message: "joinDate must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if r.Age != nil && *r.Age < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "age",
			Message: "age must not be negative",
		})
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	if r.ImageURL != nil && !validator.IsEmpty(*r.ImageURL) && !validator.IsValidURL(*r.ImageURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "imageUrl",
			Message: "imageUrl must be an absolute http(s) URL",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the non-nil fields into p.
func (r *UpdateProfileRequest) Apply(p *Profile) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Role != nil {
		p.Role = *r.Role
	}
	if r.Department != nil {
		p.Department = *r.Department
	}
	if r.JoinDate != nil {
		p.JoinDate = *r.JoinDate
	}
	if r.Salary != nil {
		p.Salary = *r.Salary
	}
	if r.Age != nil {
		p.Age = *r.Age
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
}
