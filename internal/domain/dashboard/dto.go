package dashboard

import (
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/leave"
)

// DashboardResponse is the read-only summary shown on the landing page.
type DashboardResponse struct {
	Greeting        string                      `json:"greeting"`
	Leaves          LeaveSummary                `json:"leaves"`
	LatestLeave     *leave.LeaveRequestResponse `json:"latestLeave,omitempty"`
	LatestAppraisal *appraisal.Appraisal        `json:"latestAppraisal,omitempty"`
	TotalAppraisals int                         `json:"totalAppraisals"`
	Attendance      attendance.Stats            `json:"attendance"`
	TodayAttendance *attendance.Record          `json:"todayAttendance,omitempty"`
}

type LeaveSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
