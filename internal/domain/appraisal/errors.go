package appraisal

import "errors"

var (
	ErrAppraisalNotFound = errors.New("Appraisal not found")
)
