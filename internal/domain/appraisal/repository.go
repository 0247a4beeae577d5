package appraisal

import "context"

type AppraisalRepository interface {
	Create(ctx context.Context, appraisal Appraisal) (Appraisal, error)
	GetByID(ctx context.Context, id string) (Appraisal, bool)
	List(ctx context.Context) []Appraisal
	// Update applies fn to the stored record and returns the result.
	Update(ctx context.Context, id string, fn func(*Appraisal)) (Appraisal, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
