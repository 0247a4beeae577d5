package appraisal

import "context"

type AppraisalService interface {
	CreateAppraisal(ctx context.Context, req CreateAppraisalRequest) (Appraisal, error)
	ListAppraisals(ctx context.Context) (ListAppraisalResponse, error)
	GetAppraisal(ctx context.Context, id string) (Appraisal, error)
	UpdateAppraisal(ctx context.Context, id string, req UpdateAppraisalRequest) (Appraisal, error)
	DeleteAppraisal(ctx context.Context, id string) error
}
