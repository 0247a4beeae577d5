package leave

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRequest_Days(t *testing.T) {
	assert.Equal(t, 1, LeaveRequest{StartDate: "2025-05-01", EndDate: "2025-05-01"}.Days())
	assert.Equal(t, 5, LeaveRequest{StartDate: "2025-02-26", EndDate: "2025-03-02"}.Days())
	assert.Equal(t, 0, LeaveRequest{StartDate: "2025-05-02", EndDate: "2025-05-01"}.Days())
	assert.Equal(t, 0, LeaveRequest{StartDate: "bad", EndDate: "2025-05-01"}.Days())
}

func TestLeaveRequest_DaysOverCenturies(t *testing.T) {
	assert.Equal(t, 173126, LeaveRequest{StartDate: "2026-01-01", EndDate: "2500-01-01"}.Days())
	assert.Equal(t, 366, LeaveRequest{StartDate: "2024-01-01", EndDate: "2024-12-31"}.Days())
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus([]LeaveRequest{
		{Status: LeaveRequestStatusPending},
		{Status: LeaveRequestStatusPending},
		{Status: LeaveRequestStatusApproved},
		{Status: LeaveRequestStatusRejected},
	})
	assert.Equal(t, StatusCounts{Pending: 2, Approved: 1, Rejected: 1}, counts)
}

func TestApplyLeaveRequest_Validate(t *testing.T) {
	today := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)

	t.Run("defaults type to casual", func(t *testing.T) {
		req := ApplyLeaveRequest{StartDate: "2025-06-10", EndDate: "2025-06-11", Reason: "rest"}
		require.NoError(t, req.Validate(today))
		assert.Equal(t, "casual", req.Type)
	})

	cases := []struct {
		name  string
		req   ApplyLeaveRequest
		field string
		msg   string
	}{
		{"past start", ApplyLeaveRequest{StartDate: "2025-06-09", EndDate: "2025-06-11", Reason: "x"}, "startDate", "Start date cannot be in the past"},
		{"end before start", ApplyLeaveRequest{StartDate: "2025-06-12", EndDate: "2025-06-11", Reason: "x"}, "endDate", "End date cannot be before start date"},
		{"blank reason", ApplyLeaveRequest{StartDate: "2025-06-12", EndDate: "2025-06-12", Reason: "  "}, "reason", "Please provide a reason for your leave"},
		{"unknown type", ApplyLeaveRequest{StartDate: "2025-06-12", EndDate: "2025-06-12", Reason: "x", Type: "sabbatical"}, "type", "type must be one of casual, sick, vacation, personal"},
		{"bad date", ApplyLeaveRequest{StartDate: "12/06/2025", EndDate: "2025-06-12", Reason: "x"}, "startDate", "startDate must be in YYYY-MM-DD format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate(today)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tc.msg, verrs.ToMap()[tc.field])
		})
	}
}

func TestLeaveRequestFilter_Validate(t *testing.T) {
	assert.NoError(t, LeaveRequestFilter{}.Validate())
	pending := "pending"
	assert.NoError(t, LeaveRequestFilter{Status: &pending}.Validate())
	bogus := "cancelled"
	assert.ErrorIs(t, LeaveRequestFilter{Status: &bogus}.Validate(), ErrInvalidStatusFilter)
}
