package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

var Statuses = []string{string(StatusPresent), string(StatusAbsent)}

const (
	DateLayout        = "2006-01-02"
	CheckInTimeLayout = "15:04:05"
)

// Record is one day's attendance. Date is the natural key; at most one
// record exists per date and records are never edited.
type Record struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Status      Status  `json:"status"`
	CheckInTime *string `json:"checkInTime,omitempty"`
}

// NewRecord builds the record for the calendar day of now. A check-in time is
// captured only for present.
func NewRecord(now time.Time, status Status) Record {
	rec := Record{
		Date:   now.Format(DateLayout),
		Status: status,
	}
	if status == StatusPresent {
		checkIn := now.Format(CheckInTimeLayout)
		rec.CheckInTime = &checkIn
	}
	return rec
}
