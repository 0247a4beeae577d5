package profile

import "context"

type ProfileRepository interface {
	Get(ctx context.Context) Profile
	Update(ctx context.Context, fn func(*Profile)) (Profile, error)
	Replace(ctx context.Context, p Profile) error
}
