package leave

import (
	"context"
)

// LeaveRequestRepository persists leave requests in insertion order.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, bool)
	List(ctx context.Context) []LeaveRequest
	Delete(ctx context.Context, id string) (bool, error)
}
