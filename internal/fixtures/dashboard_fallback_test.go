package fixtures

import (
	"testing"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
)

func TestSyntheticTrendPoint(t *testing.T) {
	first := SyntheticTrendPoint(0, "2025-01-01")
	assert.Equal(t, int64(1800), first.Loading)
	assert.Equal(t, int64(1656), first.Offloading)
	assert.Equal(t, int64(144), first.Wip)
	assert.Equal(t, 85.0, first.Efficiency)
	assert.True(t, first.Synthetic)

	later := SyntheticTrendPoint(8, "2025-01-09")
	assert.Equal(t, int64(1900), later.Loading)
	assert.Equal(t, int64(1748), later.Offloading)
	assert.Equal(t, 91.0, later.Efficiency)
	assert.Equal(t, later.Loading-later.Offloading, later.Wip)
}

func TestDashboardFallback_Complete(t *testing.T) {
	trend := []dashboard.TrendPoint{SyntheticTrendPoint(0, "2025-01-01")}
	payload := DashboardFallback(trend)

	assert.Equal(t, int64(26926), payload.Summary.TotalLoading)
	assert.Equal(t, 147.5, payload.Summary.AchievementPct)
	assert.Len(t, payload.LineComparisonRows, 3)
	assert.NotNil(t, payload.DateWiseEfficiency)
	assert.Empty(t, payload.DateWiseEfficiency)
	assert.Equal(t, trend, payload.LineTrendData)
	assert.Len(t, payload.PieCharts.ProductionDistribution, 2)
	assert.Len(t, payload.PieCharts.DefectBreakdown, 4)
	assert.Len(t, payload.PieCharts.LinePerformance, 3)
	assert.Len(t, payload.PieCharts.ShiftDistribution, 2)
	assert.Equal(t, int64(70), payload.DefectAnalysis.TotalDefects)
	assert.NotNil(t, payload.DefectAnalysis.DefectRecords)
}

func TestFallbackSlicesAreFreshCopies(t *testing.T) {
	rows := FallbackLineRows()
	rows[0].Loading = 0
	assert.Equal(t, int64(2400), FallbackLineRows()[0].Loading)
}
