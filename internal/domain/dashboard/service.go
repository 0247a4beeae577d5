package dashboard

import "context"

type DashboardService interface {
	// GetDashboard reads every store concurrently and never mutates them.
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
