package appraisal

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/sse"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
	"github.com/cmlabs-hris/employee-portal-go/internal/repository/slot"
	notificationService "github.com/cmlabs-hris/employee-portal-go/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppraisalTestService(t *testing.T, clock *time.Time) (appraisal.AppraisalService, appraisal.AppraisalRepository, notification.Service) {
	t.Helper()
	repo := slot.NewAppraisalRepository(context.Background(), storage.NewMemoryStorage(), nil)
	notifier := notificationService.NewNotificationService(sse.NewHub(), nil, notificationService.Config{TTL: time.Minute})
	t.Cleanup(notifier.Close)
	return NewAppraisalService(repo, notifier, func() time.Time { return *clock }), repo, notifier
}

func lastMessage(n notification.Service) string {
	list := n.List()
	if len(list) == 0 {
		return ""
	}
	return list[len(list)-1].Message
}

func TestCreateAppraisal(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, notifier := newAppraisalTestService(t, &clock)

	created, err := svc.CreateAppraisal(context.Background(), appraisal.CreateAppraisalRequest{
		Achievements: "Shipped the portal",
		Goals:        "Mentor two engineers",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, clock, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, "Appraisal submitted successfully", lastMessage(notifier))
}

func TestCreateAppraisal_RequiresAchievementsAndGoals(t *testing.T) {
	clock := time.Now()
	svc, repo, notifier := newAppraisalTestService(t, &clock)

	_, err := svc.CreateAppraisal(context.Background(), appraisal.CreateAppraisalRequest{Achievements: "only this"})
	require.Error(t, err)
	assert.Empty(t, repo.List(context.Background()))
	assert.Equal(t, "Please fill in all required fields", lastMessage(notifier))
}

func TestUpdateAppraisal_PartialAndTimestamps(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, notifier := newAppraisalTestService(t, &clock)
	ctx := context.Background()

	created, err := svc.CreateAppraisal(ctx, appraisal.CreateAppraisalRequest{Achievements: "a", Challenges: "c", Goals: "g"})
	require.NoError(t, err)

	clock = clock.Add(2 * time.Hour)
	feedback := "Strong quarter"
	updated, err := svc.UpdateAppraisal(ctx, created.ID, appraisal.UpdateAppraisalRequest{Feedback: &feedback})
	require.NoError(t, err)

	assert.Equal(t, "Strong quarter", updated.Feedback)
	assert.Equal(t, "c", updated.Challenges)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, clock, updated.UpdatedAt)
	assert.Equal(t, "Appraisal updated successfully", lastMessage(notifier))

	// a clock running behind never moves UpdatedAt before CreatedAt
	clock = created.CreatedAt.Add(-time.Hour)
	updated, err = svc.UpdateAppraisal(ctx, created.ID, appraisal.UpdateAppraisalRequest{Feedback: &feedback})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestUpdateAppraisal_NotFound(t *testing.T) {
	clock := time.Now()
	svc, _, _ := newAppraisalTestService(t, &clock)

	goals := "g"
	_, err := svc.UpdateAppraisal(context.Background(), "missing", appraisal.UpdateAppraisalRequest{Goals: &goals})
	assert.ErrorIs(t, err, appraisal.ErrAppraisalNotFound)
}

func TestDeleteAndListAppraisals(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, notifier := newAppraisalTestService(t, &clock)
	ctx := context.Background()

	older, err := svc.CreateAppraisal(ctx, appraisal.CreateAppraisalRequest{Achievements: "a", Goals: "g"})
	require.NoError(t, err)
	clock = clock.Add(time.Hour)
	newer, err := svc.CreateAppraisal(ctx, appraisal.CreateAppraisalRequest{Achievements: "b", Goals: "g"})
	require.NoError(t, err)

	list, err := svc.ListAppraisals(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, list.TotalCount)
	assert.Equal(t, newer.ID, list.Appraisals[0].ID)

	require.NoError(t, svc.DeleteAppraisal(ctx, older.ID))
	assert.Equal(t, "Appraisal deleted successfully", lastMessage(notifier))
	assert.ErrorIs(t, svc.DeleteAppraisal(ctx, older.ID), appraisal.ErrAppraisalNotFound)

	_, err = svc.GetAppraisal(ctx, older.ID)
	assert.ErrorIs(t, err, appraisal.ErrAppraisalNotFound)
}
