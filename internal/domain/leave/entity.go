package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypeCasual   LeaveType = "casual"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypeVacation LeaveType = "vacation"
	LeaveTypePersonal LeaveType = "personal"
)

var LeaveTypes = []string{
	string(LeaveTypeCasual),
	string(LeaveTypeSick),
	string(LeaveTypeVacation),
	string(LeaveTypePersonal),
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

var LeaveRequestStatuses = []string{
	string(LeaveRequestStatusPending),
	string(LeaveRequestStatusApproved),
	string(LeaveRequestStatusRejected),
}

// LeaveRequest is a single leave application. Once created it is never edited,
// only withdrawn.
type LeaveRequest struct {
	ID        string             `json:"id"`
	StartDate string             `json:"startDate"` // YYYY-MM-DD
	EndDate   string             `json:"endDate"`   // YYYY-MM-DD
	Reason    string             `json:"reason"`
	Type      LeaveType          `json:"type"`
	Status    LeaveRequestStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Days returns the inclusive number of calendar days covered by the request,
// or 0 when the dates cannot be parsed.
func (l LeaveRequest) Days() int {
	start, err := time.Parse("2006-01-02", l.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", l.EndDate)
	if err != nil || end.Before(start) {
		return 0
	}
	// Unix seconds, not time.Duration, which saturates after about 292 years.
	return int((end.Unix()-start.Unix())/86400) + 1
}

func (l LeaveRequest) IsPending() bool {
	return l.Status == LeaveRequestStatusPending
}

// StatusCounts tallies leave requests per status.
type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func CountByStatus(requests []LeaveRequest) StatusCounts {
	var counts StatusCounts
	for _, r := range requests {
		switch r.Status {
		case LeaveRequestStatusPending:
			counts.Pending++
		case LeaveRequestStatusApproved:
			counts.Approved++
		case LeaveRequestStatusRejected:
			counts.Rejected++
		}
	}
	return counts
}
