package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/profile"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	leaves      leave.LeaveRequestRepository
	appraisals  appraisal.AppraisalRepository
	attendances attendance.AttendanceRepository
	profiles    profile.ProfileRepository
	now         func() time.Time
}

func NewDashboardService(
	leaves leave.LeaveRequestRepository,
	appraisals appraisal.AppraisalRepository,
	attendances attendance.AttendanceRepository,
	profiles profile.ProfileRepository,
	now func() time.Time,
) dashboard.DashboardService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &DashboardServiceImpl{
		leaves:      leaves,
		appraisals:  appraisals,
		attendances: attendances,
		profiles:    profiles,
		now:         now,
	}
}

// GetDashboard returns the landing page summary. Each store is read on its
// own goroutine; nothing is written.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	today := s.now().Format(attendance.DateLayout)

	var (
		greeting        string
		leaveSummary    dashboard.LeaveSummary
		latestLeave     *leave.LeaveRequestResponse
		latestAppraisal *appraisal.Appraisal
		totalAppraisals int
		stats           attendance.Stats
		todayRecord     *attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Greeting
	g.Go(func() error {
		greeting = fmt.Sprintf("Welcome back, %s!", s.profiles.Get(gCtx).FirstName())
		return nil
	})

	// 2. Leave counts and the first request on record
	g.Go(func() error {
		requests := s.leaves.List(gCtx)
		counts := leave.CountByStatus(requests)
		leaveSummary = dashboard.LeaveSummary{
			Total:    len(requests),
			Pending:  counts.Pending,
			Approved: counts.Approved,
			Rejected: counts.Rejected,
		}
		if len(requests) > 0 {
			resp := leave.NewLeaveRequestResponse(requests[0])
			latestLeave = &resp
		}
		return nil
	})

	// 3. Appraisals
	g.Go(func() error {
		all := s.appraisals.List(gCtx)
		totalAppraisals = len(all)
		latestAppraisal = appraisal.Latest(all)
		return nil
	})

	// 4. Attendance stats and today's record
	g.Go(func() error {
		records := s.attendances.List(gCtx)
		stats = attendance.ComputeStats(records)
		for _, r := range records {
			if r.Date == today {
				todayRecord = &r
				break
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Greeting:        greeting,
		Leaves:          leaveSummary,
		LatestLeave:     latestLeave,
		LatestAppraisal: latestAppraisal,
		TotalAppraisals: totalAppraisals,
		Attendance:      stats,
		TodayAttendance: todayRecord,
	}, nil
}
