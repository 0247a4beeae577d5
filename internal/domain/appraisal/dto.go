package appraisal

import "github.com/cmlabs-hris/employee-portal-go/internal/pkg/validator"

const requiredFieldsMessage = "Please fill in all required fields"

type CreateAppraisalRequest struct {
	Achievements   string `json:"achievements"`
	Challenges     string `json:"challenges"`
	Goals          string `json:"goals"`
	SkillsImproved string `json:"skillsImproved"`
	Feedback       string `json:"feedback"`
}

func (r *CreateAppraisalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Achievements) {
		errs = append(errs, validator.ValidationError{
			Field:   "achievements",
			Message: requiredFieldsMessage,
		})
	}
	if validator.IsEmpty(r.Goals) {
		errs = append(errs, validator.ValidationError{
			Field:   "goals",
			Message: requiredFieldsMessage,
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAppraisalRequest carries a partial edit; nil fields are left untouched.
type UpdateAppraisalRequest struct {
	Achievements   *string `json:"achievements,omitempty"`
	Challenges     *string `json:"challenges,omitempty"`
	Goals          *string `json:"goals,omitempty"`
	SkillsImproved *string `json:"skillsImproved,omitempty"`
	Feedback       *string `json:"feedback,omitempty"`
}

func (r *UpdateAppraisalRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Achievements != nil && validator.IsEmpty(*r.Achievements) {
		errs = append(errs, validator.ValidationError{
			Field:   "achievements",
			Message: requiredFieldsMessage,
		})
	}
	if r.Goals != nil && validator.IsEmpty(*r.Goals) {
		errs = append(errs, validator.ValidationError{
			Field:   "goals",
			Message: requiredFieldsMessage,
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the non-nil fields into a.
func (r *UpdateAppraisalRequest) Apply(a *Appraisal) {
	if r.Achievements != nil {
		a.Achievements = *r.Achievements
	}
	if r.Challenges != nil {
		a.Challenges = *r.Challenges
	}
	if r.Goals != nil {
		a.Goals = *r.Goals
	}
	if r.SkillsImproved != nil {
		a.SkillsImproved = *r.SkillsImproved
	}
	if r.Feedback != nil {
		a.Feedback = *r.Feedback
	}
}

type ListAppraisalResponse struct {
	TotalCount int         `json:"totalCount"`
	Appraisals []Appraisal `json:"appraisals"`
}
