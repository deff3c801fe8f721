package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard always returns a complete payload; store failures degrade to fallback data
	GetDashboard(ctx context.Context, req FilterRequest) *DashboardPayload

	// GetTrend returns the fixed-length daily trend series
	GetTrend(ctx context.Context, req TrendRequest) *TrendResponse

	// GetLineShares returns loading/offloading/WIP shares per line
	GetLineShares(ctx context.Context, req FilterRequest) (*LineSharesResponse, error)

	// GetLineTargetSummary returns target totals against actual offloading
	GetLineTargetSummary(ctx context.Context, req FilterRequest) (*LineTargetSummary, error)

	// GetLineWiseTargets returns per-line target share and achievement
	GetLineWiseTargets(ctx context.Context, req FilterRequest) (*LineWiseTargetsResponse, error)
}
