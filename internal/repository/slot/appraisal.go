package slot

import (
	"context"

	"github.com/cmlabs-hris/employee-portal-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
)

type appraisalRepositoryImpl struct {
	store *Store[string, appraisal.Appraisal]
}

func NewAppraisalRepository(ctx context.Context, st storage.Storage, m *metrics.Metrics) appraisal.AppraisalRepository {
	store := NewStore(AppraisalsSlot, st, m, func(a appraisal.Appraisal) string { return a.ID })
	store.Load(ctx)
	return &appraisalRepositoryImpl{store: store}
}

func (r *appraisalRepositoryImpl) Create(ctx context.Context, a appraisal.Appraisal) (appraisal.Appraisal, error) {
	return a, r.store.Add(ctx, a)
}

func (r *appraisalRepositoryImpl) GetByID(ctx context.Context, id string) (appraisal.Appraisal, bool) {
	return r.store.Get(id)
}

func (r *appraisalRepositoryImpl) List(ctx context.Context) []appraisal.Appraisal {
	return r.store.List()
}

func (r *appraisalRepositoryImpl) Update(ctx context.Context, id string, fn func(*appraisal.Appraisal)) (appraisal.Appraisal, bool, error) {
	return r.store.Update(ctx, id, fn)
}

func (r *appraisalRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Remove(ctx, id)
}
