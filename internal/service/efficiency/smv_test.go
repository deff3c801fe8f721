package efficiency

import (
	"testing"
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/stretchr/testify/assert"
)

func TestStylePrefix(t *testing.T) {
	cases := map[string]string{
		"ABC-10-BLK": "ABC",
		"ABC_10":     "ABC",
		"ABC":        "ABC",
		"_ABC":       "",
		"":           "",
		"A1_B-C":     "A1",
	}
	for in, want := range cases {
		assert.Equal(t, want, StylePrefix(in), in)
		assert.Equal(t, StylePrefix(in), StylePrefix(StylePrefix(in)), "idempotent for %q", in)
	}
}

func TestNewSMVTable_LatestApplicableDateWins(t *testing.T) {
	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	table := NewSMVTable([]production.StandardMinuteRecord{
		{StyleID: "ABC", TotalSMV: 1.0, ConversionFactor: 1.0, ApplicableDate: &jan},
		{StyleID: "ABC", TotalSMV: 2.0, ConversionFactor: 1.1, ApplicableDate: &feb},
		{StyleID: "ABC", TotalSMV: 9.9, ConversionFactor: 9.9, ApplicableDate: nil},
		{StyleID: "XYZ-01", TotalSMV: 3.0, ConversionFactor: 0, ApplicableDate: &jan},
	}, DefaultPolicy())

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, StandardMinutes{SMV: 2.0, ConversionFactor: 1.1}, table.Lookup("ABC"))
	assert.Equal(t, StandardMinutes{SMV: 3.0, ConversionFactor: 1.0}, table.Lookup("XYZ"))
}

func TestNewSMVTable_TiesKeepFirstRecord(t *testing.T) {
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	table := NewSMVTable([]production.StandardMinuteRecord{
		{StyleID: "ABC", TotalSMV: 1.1, ConversionFactor: 1, ApplicableDate: &d},
		{StyleID: "ABC-2", TotalSMV: 1.9, ConversionFactor: 1, ApplicableDate: &d},
	}, DefaultPolicy())

	assert.Equal(t, 1.1, table.Lookup("ABC").SMV)
}

func TestSMVTable_LookupMissing(t *testing.T) {
	table := NewSMVTable(nil, DefaultPolicy())

	sm := table.Lookup("")
	assert.Equal(t, 1.5, sm.SMV)
	assert.Equal(t, 1.0, sm.ConversionFactor)
	assert.True(t, sm.Defaulted)
}

func TestWIPCalculator(t *testing.T) {
	wip := NewWIPCalculator(DefaultPolicy().WIPOperations)
	events := []production.ProductionEvent{
		event("line-21", "ABC", "1", opLoading, 100, 0),
		event("line-21", "ABC", "2", opPacking, 0, 130),
		event("line-21", "ABC", "3", opSewing, 999, 0),
		event("line-22", "ABC", "4", opLoading, 40, 10),
	}

	assert.Equal(t, int64(-30), wip.WIP(events, "line-21", "ABC"))
	assert.Equal(t, int64(30), wip.WIP(events, "line-22", "ABC"))
	assert.Equal(t, map[LineStyle]int64{
		{Line: "line-21", StyleID: "ABC"}: -30,
		{Line: "line-22", StyleID: "ABC"}: 30,
	}, wip.ByLineStyle(events))
}

func TestHeadcountResolver(t *testing.T) {
	hr := NewHeadcountResolver("10613")
	events := []production.ProductionEvent{
		event("line-21", "ABC", "1061301", opLoading, 1, 1),
		event("line-21", "ABC", "1061301", opSewing, 1, 1),
		event("line-21", "ABC", "1061302", opSewing, 0, 0),
		event("line-21", "ABC", "5061303", opSewing, 0, 0),
		event("line-21", "XYZ", "1061304", opSewing, 0, 0),
	}

	key := GroupKey{Date: "2025-03-10", Line: "line-21", StyleID: "ABC"}
	assert.Equal(t, 2, hr.Headcount(events, key))
	assert.Equal(t, 0, hr.Headcount(events, GroupKey{Date: "2025-03-10", Line: "line-99", StyleID: "ABC"}))
	assert.Equal(t, map[string]int{"line-21": 3}, hr.ByLine(events))
	assert.False(t, hr.Eligible(""))
}

func TestComputeVariance(t *testing.T) {
	v := ComputeVariance(26385, 17884)
	assert.Equal(t, int64(8501), v.Variance)
	assert.Equal(t, 47.5, v.VariancePct)
	assert.Equal(t, 147.5, v.AchievementPct)

	zero := ComputeVariance(120, 0)
	assert.Equal(t, int64(120), zero.Variance)
	assert.Equal(t, 0.0, zero.VariancePct)
	assert.Equal(t, 0.0, zero.AchievementPct)

	under := ComputeVariance(50, 200)
	assert.Equal(t, int64(-150), under.Variance)
	assert.Equal(t, -75.0, under.VariancePct)
	assert.Equal(t, 25.0, under.AchievementPct)
}
