package appraisal

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/notification"
	"github.com/google/uuid"
)

const (
	msgAppraisalSubmitted = "Appraisal submitted successfully"
	msgAppraisalUpdated   = "Appraisal updated successfully"
	msgAppraisalDeleted   = "Appraisal deleted successfully"
)

type AppraisalServiceImpl struct {
	appraisal.AppraisalRepository
	notifier notification.Notifier
	now      func() time.Time
}

func NewAppraisalService(repo appraisal.AppraisalRepository, notifier notification.Notifier, now func() time.Time) appraisal.AppraisalService {
	if now == nil {
		now = time.Now
	}
	return &AppraisalServiceImpl{
		AppraisalRepository: repo,
		notifier:            notifier,
		now:                 now,
	}
}

// CreateAppraisal implements appraisal.AppraisalService.
func (s *AppraisalServiceImpl) CreateAppraisal(ctx context.Context, req appraisal.CreateAppraisalRequest) (appraisal.Appraisal, error) {
	if err := req.Validate(); err != nil {
		return appraisal.Appraisal{}, notification.Reject(s.notifier, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return appraisal.Appraisal{}, fmt.Errorf("failed to generate appraisal id: %w", err)
	}

	now := s.now()
	created, err := s.AppraisalRepository.Create(ctx, appraisal.Appraisal{
		ID:             id.String(),
		Achievements:   req.Achievements,
		Challenges:     req.Challenges,
		Goals:          req.Goals,
		SkillsImproved: req.SkillsImproved,
		Feedback:       req.Feedback,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err := notification.Announce(s.notifier, err, msgAppraisalSubmitted); err != nil {
		return appraisal.Appraisal{}, fmt.Errorf("failed to create appraisal: %w", err)
	}

	slog.Info("Appraisal submitted", "id", created.ID)
	return created, nil
}

// ListAppraisals implements appraisal.AppraisalService. Newest first.
func (s *AppraisalServiceImpl) ListAppraisals(ctx context.Context) (appraisal.ListAppraisalResponse, error) {
	all := s.AppraisalRepository.List(ctx)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return appraisal.ListAppraisalResponse{
		TotalCount: len(all),
		Appraisals: all,
	}, nil
}

// GetAppraisal implements appraisal.AppraisalService.
func (s *AppraisalServiceImpl) GetAppraisal(ctx context.Context, id string) (appraisal.Appraisal, error) {
	a, ok := s.AppraisalRepository.GetByID(ctx, id)
	if !ok {
		return appraisal.Appraisal{}, appraisal.ErrAppraisalNotFound
	}
	return a, nil
}

// UpdateAppraisal implements appraisal.AppraisalService. UpdatedAt moves to
// now but never before CreatedAt.
func (s *AppraisalServiceImpl) UpdateAppraisal(ctx context.Context, id string, req appraisal.UpdateAppraisalRequest) (appraisal.Appraisal, error) {
	if err := req.Validate(); err != nil {
		return appraisal.Appraisal{}, notification.Reject(s.notifier, err)
	}

	now := s.now()
	updated, found, err := s.AppraisalRepository.Update(ctx, id, func(a *appraisal.Appraisal) {
		req.Apply(a)
		a.UpdatedAt = now
		if a.UpdatedAt.Before(a.CreatedAt) {
			a.UpdatedAt = a.CreatedAt
		}
	})
	if !found {
		return appraisal.Appraisal{}, appraisal.ErrAppraisalNotFound
	}
	if err := notification.Announce(s.notifier, err, msgAppraisalUpdated); err != nil {
		return appraisal.Appraisal{}, fmt.Errorf("failed to update appraisal: %w", err)
	}
	return updated, nil
}

// DeleteAppraisal implements appraisal.AppraisalService.
func (s *AppraisalServiceImpl) DeleteAppraisal(ctx context.Context, id string) error {
	removed, err := s.AppraisalRepository.Delete(ctx, id)
	if !removed {
		return appraisal.ErrAppraisalNotFound
	}
	if err := notification.Announce(s.notifier, err, msgAppraisalDeleted); err != nil {
		return fmt.Errorf("failed to delete appraisal: %w", err)
	}

	slog.Info("Appraisal deleted", "id", id)
	return nil
}
