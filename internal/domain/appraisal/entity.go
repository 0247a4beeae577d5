package appraisal

import "time"

// Appraisal is a self-appraisal. UpdatedAt never precedes CreatedAt and
// moves only on edit.
type Appraisal struct {
	ID             string    `json:"id"`
	Achievements   string    `json:"achievements"`
	Challenges     string    `json:"challenges"`
	Goals          string    `json:"goals"`
	SkillsImproved string    `json:"skillsImproved"`
	Feedback       string    `json:"feedback"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Latest returns the appraisal with the greatest CreatedAt. Ties keep the earliest inserted.
func Latest(appraisals []Appraisal) *Appraisal {
	var latest *Appraisal
	for i := range appraisals {
		if latest == nil || appraisals[i].CreatedAt.After(latest.CreatedAt) {
			latest = &appraisals[i]
		}
	}
	if latest == nil {
		return nil
	}
	out := *latest
	return &out
}
