package slot

import (
	"context"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
)

type leaveRequestRepositoryImpl struct {
	store *Store[string, leave.LeaveRequest]
}

func NewLeaveRequestRepository(ctx context.Context, st storage.Storage, m *metrics.Metrics) leave.LeaveRequestRepository {
	store := NewStore(LeavesSlot, st, m, func(l leave.LeaveRequest) string { return l.ID })
	store.Load(ctx)
	return &leaveRequestRepositoryImpl{store: store}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	return request, r.store.Add(ctx, request)
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, bool) {
	return r.store.Get(id)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) []leave.LeaveRequest {
	return r.store.List()
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Remove(ctx, id)
}
