package profile

import "context"

type ProfileService interface {
	GetProfile(ctx context.Context) (Profile, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (Profile, error)
}
