package attendance

// Stats summarizes a set of attendance records.
type Stats struct {
	TotalDays            int     `json:"totalDays"`
	PresentDays          int     `json:"presentDays"`
	AbsentDays           int     `json:"absentDays"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}

// ComputeStats counts records by status. The percentage is present/total*100
// at full precision and 0 for no records.
func ComputeStats(records []Record) Stats {
	stats := Stats{TotalDays: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			stats.PresentDays++
		case StatusAbsent:
			stats.AbsentDays++
		}
	}
	if stats.TotalDays > 0 {
		stats.AttendancePercentage = float64(stats.PresentDays) / float64(stats.TotalDays) * 100
	}
	return stats
}
