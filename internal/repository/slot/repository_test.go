package slot

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/profile"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRequestRepository_ReadsBrowserData(t *testing.T) {
	mem := storage.NewMemoryStorage()
	mem.Seed(LeavesSlot, []byte(`[{"id":"1717000000000","startDate":"2024-06-01","endDate":"2024-06-03",
		"reason":"Family trip","type":"vacation","status":"approved","createdAt":"2024-05-29T16:26:40.000Z"}]`))

	repo := NewLeaveRequestRepository(context.Background(), mem, nil)

	got, ok := repo.GetByID(context.Background(), "1717000000000")
	require.True(t, ok)
	assert.Equal(t, leave.LeaveTypeVacation, got.Type)
	assert.Equal(t, leave.LeaveRequestStatusApproved, got.Status)
	assert.Equal(t, 3, got.Days())
	assert.Equal(t, time.Date(2024, 5, 29, 16, 26, 40, 0, time.UTC), got.CreatedAt.UTC())
}

func TestLeaveRequestRepository_CreateAndDelete(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	repo := NewLeaveRequestRepository(ctx, mem, nil)

	req := leave.LeaveRequest{ID: "a", StartDate: "2025-01-02", EndDate: "2025-01-02", Reason: "dentist", Type: leave.LeaveTypeSick, Status: leave.LeaveRequestStatusPending}
	_, err := repo.Create(ctx, req)
	require.NoError(t, err)

	raw, err := mem.Read(ctx, LeavesSlot)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"startDate":"2025-01-02"`)
	assert.Contains(t, string(raw), `"createdAt"`)

	removed, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, repo.List(ctx))
}

func TestAppraisalRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewAppraisalRepository(ctx, storage.NewMemoryStorage(), nil)

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, appraisal.Appraisal{ID: "1", Achievements: "shipped", Goals: "grow", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)
	_, err = repo.Create(ctx, appraisal.Appraisal{ID: "2", Achievements: "other", Goals: "other", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)

	got, found, err := repo.Update(ctx, "1", func(a *appraisal.Appraisal) { a.Feedback = "great" })
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "great", got.Feedback)
	assert.Equal(t, "shipped", got.Achievements)

	other, _ := repo.GetByID(ctx, "2")
	assert.Empty(t, other.Feedback)
}

func TestAttendanceRepository_OneRecordPerDate(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	repo := NewAttendanceRepository(ctx, mem, nil)

	added, err := repo.CreateIfAbsent(ctx, attendance.Record{Date: "2025-03-04", Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.CreateIfAbsent(ctx, attendance.Record{Date: "2025-03-04", Status: attendance.StatusAbsent})
	require.NoError(t, err)
	assert.False(t, added)

	rec, ok := repo.GetByDate(ctx, "2025-03-04")
	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 1, mem.WriteCount(AttendanceSlot))

	raw, err := mem.Read(ctx, AttendanceSlot)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"date":"2025-03-04","status":"present"}]`, string(raw))
}

func TestProfileRepository_DefaultAndUpdate(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	repo := NewProfileRepository(ctx, mem, nil)

	assert.Equal(t, profile.Default(), repo.Get(ctx))

	updated, err := repo.Update(ctx, func(p *profile.Profile) { p.Department = "Platform" })
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.Department)
	assert.Equal(t, "John Doe", updated.Name)

	reloaded := NewProfileRepository(ctx, mem, nil)
	assert.Equal(t, updated, reloaded.Get(ctx))
}

func TestProfileRepository_ReadsFractionalAge(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	mem.Seed(ProfileSlot, []byte(`{"name":"Jane Roe","email":"jane@example.com","role":"Designer","department":"Product","joinDate":"2022-03-01","salary":64000.5,"age":28.5,"phone":"+1 555 010 2030","address":"1 Main St","imageUrl":"https://example.com/jane.png"}`))

	repo := NewProfileRepository(ctx, mem, nil)
	got := repo.Get(ctx)
	assert.Equal(t, "Jane Roe", got.Name)
	assert.Equal(t, 28.5, got.Age)
	assert.Equal(t, 64000.5, got.Salary)

	_, err := repo.Update(ctx, func(p *profile.Profile) { p.Department = "Design" })
	require.NoError(t, err)

	reloaded := NewProfileRepository(ctx, mem, nil).Get(ctx)
	assert.Equal(t, "Jane Roe", reloaded.Name)
	assert.Equal(t, 28.5, reloaded.Age)
	assert.Equal(t, "Design", reloaded.Department)
}

func TestRepositories_OverLocalFiles(t *testing.T) {
	ctx := context.Background()
	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	repo := NewAppraisalRepository(ctx, local, nil)
	_, err = repo.Create(ctx, appraisal.Appraisal{ID: "1", Achievements: "a", Goals: "g"})
	require.NoError(t, err)

	reloaded := NewAppraisalRepository(ctx, local, nil)
	assert.Len(t, reloaded.List(ctx), 1)
}
