package attendance

import "context"

type AttendanceRepository interface {
	// CreateIfAbsent stores record unless one already exists for its date.
	CreateIfAbsent(ctx context.Context, record Record) (bool, error)
	GetByDate(ctx context.Context, date string) (Record, bool)
	List(ctx context.Context) []Record
}
