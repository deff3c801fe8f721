package fixtures

import (
	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
)

// ==========================================
// DASHBOARD FALLBACK DATA
// ==========================================
//
// Every placeholder number the dashboard can show lives in this file.
// Callers must flag payloads built from it as non-live.

const (
	ColorGreen  = "#22c55e"
	ColorRed    = "#ef4444"
	ColorAmber  = "#f59e0b"
	ColorYellow = "#eab308"
	ColorLime   = "#84cc16"
	ColorBlue   = "#3b82f6"
	ColorViolet = "#8b5cf6"
)

// FallbackSummary is the headline block shown when no production data is available.
// Defects and the defect analysis total come from separate placeholder sets and do not agree.
func FallbackSummary() dashboard.Summary {
	return dashboard.Summary{
		TotalLoading:     26926,
		TotalOffloading:  26385,
		TotalWip:         541,
		Defects:          48,
		TotalTarget:      17884,
		Variance:         8501,
		VariancePct:      47.5,
		AchievementPct:   147.5,
		BreakdownTimeMin: 120,
		Efficiency:       98.0,
		ActiveLines:      12,
		AttendancePct:    94.1,
	}
}

func FallbackLineRows() []dashboard.LineComparisonRow {
	return []dashboard.LineComparisonRow{
		{Line: "Line-21", Loading: 2400, Offloading: 2350, Wip: 50, Target: 1200, AchievementPct: 195.8, Variance: 1150, VariancePct: 95.8, Efficiency: 98, Defects: 5, BreakdownMin: 15, ActiveEmployees: 85, PresentEmployees: 80, AttendancePct: 94.1},
		{Line: "Line-22", Loading: 2450, Offloading: 2400, Wip: 50, Target: 1250, AchievementPct: 192.0, Variance: 1150, VariancePct: 92.0, Efficiency: 98, Defects: 6, BreakdownMin: 12, ActiveEmployees: 88, PresentEmployees: 83, AttendancePct: 94.3},
		{Line: "Line-23", Loading: 2380, Offloading: 2330, Wip: 50, Target: 1180, AchievementPct: 197.5, Variance: 1150, VariancePct: 97.5, Efficiency: 98, Defects: 4, BreakdownMin: 18, ActiveEmployees: 82, PresentEmployees: 77, AttendancePct: 93.9},
	}
}

func FallbackProductionDistribution() []dashboard.PieSlice {
	return []dashboard.PieSlice{
		{Label: "Target Achieved", Value: 18500, Color: ColorGreen},
		{Label: "Below Target", Value: 2500, Color: ColorRed},
	}
}

func FallbackDefectBreakdown() []dashboard.PieSlice {
	return []dashboard.PieSlice{
		{Label: "Stitch Issues", Value: 28, Color: ColorRed},
		{Label: "Measurement", Value: 15, Color: ColorAmber},
		{Label: "Stain", Value: 12, Color: ColorYellow},
		{Label: "Other", Value: 8, Color: ColorLime},
	}
}

func FallbackLinePerformance() []dashboard.PieSlice {
	return []dashboard.PieSlice{
		{Label: "Line-21", Value: 2350, Color: ColorBlue},
		{Label: "Line-22", Value: 2400, Color: ColorRed},
		{Label: "Line-23", Value: 2330, Color: ColorGreen},
	}
}

func FallbackShiftDistribution() []dashboard.PieSlice {
	return []dashboard.PieSlice{
		{Label: "Day Shift", Value: 10800, Color: ColorBlue},
		{Label: "Night Shift", Value: 7800, Color: ColorViolet},
	}
}

func FallbackDefectsByReason() []dashboard.DefectReasonShare {
	return []dashboard.DefectReasonShare{
		{Reason: "Stitch Issues", Quantity: 28, Percentage: 40.0},
		{Reason: "Measurement", Quantity: 15, Percentage: 21.4},
		{Reason: "Stain", Quantity: 12, Percentage: 17.1},
		{Reason: "Other", Quantity: 15, Percentage: 21.4},
	}
}

func FallbackDefectsByLine() []dashboard.DefectLineShare {
	return []dashboard.DefectLineShare{
		{Line: "Line-21", Quantity: 20},
		{Line: "Line-22", Quantity: 25},
		{Line: "Line-23", Quantity: 25},
	}
}

const FallbackTotalDefects int64 = 70

// SyntheticTrendPoint fills a trend day that has no stored data.
// index is the day's position in the window, oldest first.
func SyntheticTrendPoint(index int, date string) dashboard.TrendPoint {
	loading := int64(1800 + (index%7)*100)
	offloading := int64(float64(loading) * 0.92)
	return dashboard.TrendPoint{
		Date:       date,
		Loading:    loading,
		Offloading: offloading,
		Efficiency: float64(85 + (index%5)*2),
		Wip:        loading - offloading,
		Synthetic:  true,
	}
}

// DashboardFallback assembles the complete placeholder payload. The trend series
// is passed in so it keeps the same window as a live response.
func DashboardFallback(trend []dashboard.TrendPoint) dashboard.DashboardPayload {
	return dashboard.DashboardPayload{
		Summary:            FallbackSummary(),
		LineComparisonRows: FallbackLineRows(),
		DateWiseEfficiency: []dashboard.AggregatedMetric{},
		LineTrendData:      trend,
		PieCharts: dashboard.PieCharts{
			ProductionDistribution: FallbackProductionDistribution(),
			DefectBreakdown:        FallbackDefectBreakdown(),
			LinePerformance:        FallbackLinePerformance(),
			ShiftDistribution:      FallbackShiftDistribution(),
		},
		DefectAnalysis: dashboard.DefectAnalysis{
			DefectsByReason: FallbackDefectsByReason(),
			DefectsByLine:   FallbackDefectsByLine(),
			TotalDefects:    FallbackTotalDefects,
			DefectRecords:   []dashboard.DefectRecordItem{},
		},
		BreakdownAnalysis: dashboard.BreakdownAnalysis{
			TotalMinutes: 120,
			ByCategory:   []dashboard.BreakdownCategoryShare{},
		},
	}
}
