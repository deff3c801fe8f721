package http

import (
	"net/http"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the full production dashboard payload
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetTrend returns the daily loading/offloading trend
	GetTrend(w http.ResponseWriter, r *http.Request)
	// GetLineShares returns loading/offloading/WIP shares per line
	GetLineShares(w http.ResponseWriter, r *http.Request)
	// GetLineTargetSummary returns target totals for the window
	GetLineTargetSummary(w http.ResponseWriter, r *http.Request)
	// GetLineWiseTargets returns per-line targets and achievement
	GetLineWiseTargets(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func filterFromQuery(r *http.Request) dashboard.FilterRequest {
	q := r.URL.Query()
	return dashboard.FilterRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Line:      q.Get("line"),
		Shift:     q.Get("shift"),
	}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.dashboardService.GetDashboard(r.Context(), filterFromQuery(r)))
}

// GetTrend handles GET /dashboard/trend
func (h *dashboardHandlerImpl) GetTrend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	response.Success(w, h.dashboardService.GetTrend(r.Context(), dashboard.TrendRequest{
		Days:  q.Get("days"),
		Line:  q.Get("line"),
		Shift: q.Get("shift"),
	}))
}

// GetLineShares handles GET /dashboard/line-shares
func (h *dashboardHandlerImpl) GetLineShares(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetLineShares(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLineTargetSummary handles GET /dashboard/line-targets/summary
func (h *dashboardHandlerImpl) GetLineTargetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetLineTargetSummary(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLineWiseTargets handles GET /dashboard/line-targets/by-line
func (h *dashboardHandlerImpl) GetLineWiseTargets(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetLineWiseTargets(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
