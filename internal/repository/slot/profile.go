package slot

import (
	"context"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/profile"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
)

type profileRepositoryImpl struct {
	singleton *Singleton[profile.Profile]
}

func NewProfileRepository(ctx context.Context, st storage.Storage, m *metrics.Metrics) profile.ProfileRepository {
	singleton := NewSingleton(ProfileSlot, st, m, profile.Default)
	singleton.Load(ctx)
	return &profileRepositoryImpl{singleton: singleton}
}

func (r *profileRepositoryImpl) Get(ctx context.Context) profile.Profile {
	return r.singleton.Get()
}

func (r *profileRepositoryImpl) Update(ctx context.Context, fn func(*profile.Profile)) (profile.Profile, error) {
	return r.singleton.Update(ctx, fn)
}

func (r *profileRepositoryImpl) Replace(ctx context.Context, p profile.Profile) error {
	return r.singleton.Replace(ctx, p)
}
