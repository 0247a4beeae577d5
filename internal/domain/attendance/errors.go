package attendance

import "errors"

var (
	ErrAlreadyMarked = errors.New("Attendance already marked for today")
	ErrInvalidStatus = errors.New("status must be present or absent")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
)
