package profile

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/employee-portal-go/internal/domain/profile"
)

const msgProfileUpdated = "Profile updated successfully"

type ProfileServiceImpl struct {
	profile.ProfileRepository
	notifier notification.Notifier
}

func NewProfileService(repo profile.ProfileRepository, notifier notification.Notifier) profile.ProfileService {
	return &ProfileServiceImpl{
		ProfileRepository: repo,
		notifier:          notifier,
	}
}

// GetProfile implements profile.ProfileService.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context) (profile.Profile, error) {
	return s.ProfileRepository.Get(ctx), nil
}

// UpdateProfile implements profile.ProfileService. Fields left nil keep their value.
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, req profile.UpdateProfileRequest) (profile.Profile, error) {
	if err := req.Validate(); err != nil {
		return profile.Profile{}, notification.Reject(s.notifier, err)
	}

	updated, err := s.ProfileRepository.Update(ctx, req.Apply)
	if err := notification.Announce(s.notifier, err, msgProfileUpdated); err != nil {
		return profile.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}
