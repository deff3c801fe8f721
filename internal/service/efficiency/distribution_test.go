package efficiency

import (
	"testing"
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defect(line, reason string, qty int64) production.DefectRecord {
	return production.DefectRecord{Date: day, Shift: production.ShiftDay, Line: line, Reason: reason, Quantity: qty, OperatorID: "1061301", Operator: "Ali Khan"}
}

func TestDefectsByReason(t *testing.T) {
	rows, synthetic := DefectsByReason([]production.DefectRecord{
		defect("line-21", "Stitch", 6),
		defect("line-22", "Stain", 2),
		defect("line-21", "Stitch", 2),
		defect("line-21", "", 2),
	})

	assert.False(t, synthetic)
	require.Len(t, rows, 3)
	assert.Equal(t, dashboard.DefectReasonShare{Reason: "Stitch", Quantity: 8, Percentage: 66.7}, rows[0])
	assert.Equal(t, dashboard.DefectReasonShare{Reason: "Stain", Quantity: 2, Percentage: 16.7}, rows[1])
	assert.Equal(t, "Unknown", rows[2].Reason)
}

func TestDefectsByReason_EmptyUsesFallback(t *testing.T) {
	rows, synthetic := DefectsByReason(nil)

	assert.True(t, synthetic)
	assert.Equal(t, fixtures.FallbackDefectsByReason(), rows)

	lines, synthetic := DefectsByLine(nil)
	assert.True(t, synthetic)
	assert.Equal(t, fixtures.FallbackDefectsByLine(), lines)
}

func TestDefectsByLine(t *testing.T) {
	rows, synthetic := DefectsByLine([]production.DefectRecord{
		defect("line-21", "Stitch", 1),
		defect("line-22", "Stitch", 4),
		defect("line-21", "Stain", 1),
	})

	assert.False(t, synthetic)
	assert.Equal(t, []dashboard.DefectLineShare{{Line: "line-22", Quantity: 4}, {Line: "line-21", Quantity: 2}}, rows)
}

func TestDefectRecords_Limit(t *testing.T) {
	var defects []production.DefectRecord
	for i := 0; i < 60; i++ {
		d := defect("line-21", "Stitch", 1)
		d.Date = day.AddDate(0, 0, -i)
		defects = append(defects, d)
	}

	items := DefectRecords(defects, MaxDefectRecords)

	require.Len(t, items, 50)
	assert.Equal(t, "2025-03-10", items[0].Date)
	assert.Equal(t, "1061301 - Ali Khan", items[0].Employee)
}

func TestProductionDistribution(t *testing.T) {
	slices, synthetic := ProductionDistribution(800, 1000)
	assert.False(t, synthetic)
	assert.Equal(t, int64(800), slices[0].Value)
	assert.Equal(t, int64(200), slices[1].Value)

	over, _ := ProductionDistribution(1200, 1000)
	assert.Equal(t, int64(0), over[1].Value)

	fallback, synthetic := ProductionDistribution(0, 1000)
	assert.True(t, synthetic)
	assert.Equal(t, fixtures.FallbackProductionDistribution(), fallback)
}

func TestDefectBreakdown_TopFive(t *testing.T) {
	reasons := []dashboard.DefectReasonShare{
		{Reason: "a", Quantity: 7}, {Reason: "b", Quantity: 6}, {Reason: "c", Quantity: 5},
		{Reason: "d", Quantity: 4}, {Reason: "e", Quantity: 3}, {Reason: "f", Quantity: 2},
	}

	slices, synthetic := DefectBreakdown(reasons, false)
	assert.False(t, synthetic)
	assert.Len(t, slices, 5)
	assert.Equal(t, "a", slices[0].Label)

	fallback, synthetic := DefectBreakdown(fixtures.FallbackDefectsByReason(), true)
	assert.True(t, synthetic)
	assert.Equal(t, fixtures.FallbackDefectBreakdown(), fallback)
}

func TestLinePerformance(t *testing.T) {
	rows := []dashboard.LineComparisonRow{
		{Line: "line-21", Offloading: 10},
		{Line: "line-22", Offloading: 30},
		{Line: "line-23", Offloading: 0},
	}

	slices, synthetic := LinePerformance(rows)
	assert.False(t, synthetic)
	require.Len(t, slices, 2)
	assert.Equal(t, "line-22", slices[0].Label)
	assert.NotEqual(t, slices[0].Color, slices[1].Color)

	_, synthetic = LinePerformance(rows[2:])
	assert.True(t, synthetic)
}

func TestShiftDistribution(t *testing.T) {
	night := event("line-21", "ABC", "1", opPacking, 0, 40)
	night.Shift = production.ShiftNight
	events := []production.ProductionEvent{
		event("line-21", "ABC", "1", opPacking, 0, 60),
		event("line-21", "ABC", "1", opSewing, 0, 500),
		night,
	}

	slices, synthetic := ShiftDistribution(events, NewWIPCalculator(DefaultPolicy().WIPOperations))

	assert.False(t, synthetic)
	assert.Equal(t, []dashboard.PieSlice{
		{Label: "Day Shift", Value: 60, Color: fixtures.ColorBlue},
		{Label: "Night Shift", Value: 40, Color: fixtures.ColorViolet},
	}, slices)

	fallback, synthetic := ShiftDistribution(nil, NewWIPCalculator(DefaultPolicy().WIPOperations))
	assert.True(t, synthetic)
	assert.Equal(t, fixtures.FallbackShiftDistribution(), fallback)
}

func TestBreakdownByCategory(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC) }
	analysis := BreakdownByCategory([]production.BreakdownRecord{
		{Line: "line-21", Category: "Machine", StartedAt: at(9, 0), EndedAt: at(9, 30)},
		{Line: "line-22", Category: "Power", StartedAt: at(10, 0), EndedAt: at(10, 10)},
		{Line: "line-22", Category: "Machine", StartedAt: at(11, 0), EndedAt: at(11, 20)},
		{Line: "line-22", Category: "", StartedAt: at(12, 0), EndedAt: at(11, 0)},
	})

	assert.Equal(t, 60.0, analysis.TotalMinutes)
	require.Len(t, analysis.ByCategory, 3)
	assert.Equal(t, dashboard.BreakdownCategoryShare{Category: "Machine", Minutes: 50, Occurrences: 2, Percentage: 83.3}, analysis.ByCategory[0])
	assert.Equal(t, "Uncategorized", analysis.ByCategory[2].Category)
	assert.Equal(t, 0.0, analysis.ByCategory[2].Minutes)

	empty := BreakdownByCategory(nil)
	assert.NotNil(t, empty.ByCategory)
	assert.Empty(t, empty.ByCategory)
}
