package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrInvalidLeaveType             = errors.New("Invalid leave type")
	ErrInvalidStatusFilter          = errors.New("Invalid leave status filter")
)
