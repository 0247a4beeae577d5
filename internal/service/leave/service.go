package leave

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/notification"
	"github.com/google/uuid"
)

const (
	msgLeaveSubmitted = "Leave application submitted successfully"
	msgLeaveWithdrawn = "Leave application withdrawn successfully"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	notifier notification.Notifier
	now      func() time.Time
}

// NewLeaveService builds the leave service. now supplies the current time in
// the portal time zone; nil means time.Now.
func NewLeaveService(repo leave.LeaveRequestRepository, notifier notification.Notifier, now func() time.Time) leave.LeaveService {
	if now == nil {
		now = time.Now
	}
	return &LeaveServiceImpl{
		LeaveRequestRepository: repo,
		notifier:               notifier,
		now:                    now,
	}
}

// ApplyLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	now := s.now()
	if err := req.Validate(now); err != nil {
		return leave.LeaveRequestResponse{}, notification.Reject(s.notifier, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}

	request := leave.LeaveRequest{
		ID:        id.String(),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Type:      leave.LeaveType(req.Type),
		Status:    leave.LeaveRequestStatusPending,
		CreatedAt: now,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err := notification.Announce(s.notifier, err, msgLeaveSubmitted); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request submitted", "id", created.ID, "type", created.Type, "days", created.Days())
	return leave.NewLeaveRequestResponse(created), nil
}

// ListLeaveRequests implements leave.LeaveService. Requests are returned
// newest first; counts always cover every request.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	all := s.LeaveRequestRepository.List(ctx)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	responses := make([]leave.LeaveRequestResponse, 0, len(all))
	for _, r := range all {
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}

	return leave.ListLeaveRequestResponse{
		TotalCount:    len(responses),
		Counts:        leave.CountByStatus(all),
		LeaveRequests: responses,
	}, nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, ok := s.LeaveRequestRepository.GetByID(ctx, id)
	if !ok {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}
	return leave.NewLeaveRequestResponse(request), nil
}

// WithdrawLeaveRequest implements leave.LeaveService. Only pending requests
// can be withdrawn.
func (s *LeaveServiceImpl) WithdrawLeaveRequest(ctx context.Context, id string) error {
	request, ok := s.LeaveRequestRepository.GetByID(ctx, id)
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if !request.IsPending() {
		return notification.Reject(s.notifier, leave.ErrLeaveRequestAlreadyProcessed)
	}

	removed, err := s.LeaveRequestRepository.Delete(ctx, id)
	if !removed && err == nil {
		return leave.ErrLeaveRequestNotFound
	}
	if err := notification.Announce(s.notifier, err, msgLeaveWithdrawn); err != nil {
		return fmt.Errorf("failed to withdraw leave request: %w", err)
	}

	slog.Info("Leave request withdrawn", "id", id)
	return nil
}
