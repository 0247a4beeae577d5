package slot

import (
	"context"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
)

// attendanceRepositoryImpl keys records by date.
type attendanceRepositoryImpl struct {
	store *Store[string, attendance.Record]
}

func NewAttendanceRepository(ctx context.Context, st storage.Storage, m *metrics.Metrics) attendance.AttendanceRepository {
	store := NewStore(AttendanceSlot, st, m, func(r attendance.Record) string { return r.Date })
	store.Load(ctx)
	return &attendanceRepositoryImpl{store: store}
}

func (r *attendanceRepositoryImpl) CreateIfAbsent(ctx context.Context, record attendance.Record) (bool, error) {
	return r.store.AddIfAbsent(ctx, record.Date, record)
}

func (r *attendanceRepositoryImpl) GetByDate(ctx context.Context, date string) (attendance.Record, bool) {
	return r.store.Get(date)
}

func (r *attendanceRepositoryImpl) List(ctx context.Context) []attendance.Record {
	return r.store.List()
}
