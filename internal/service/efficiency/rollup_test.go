package efficiency

import (
	"testing"
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineRows(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2025, 3, 10, h, 0, 0, 0, time.UTC) }
	in := LineInputs{
		Lines: []string{"line-21", "line-22", "line-23"},
		Totals: []GroupTotal{
			{Key: GroupKey{Date: "2025-03-10", Line: "line-21", StyleID: "A"}, Loading: 100, Unloading: 90},
			{Key: GroupKey{Date: "2025-03-10", Line: "line-22", StyleID: "B"}, Loading: 500, Unloading: 450},
			{Key: GroupKey{Date: "2025-03-09", Line: "line-22", StyleID: "B"}, Loading: 50, Unloading: 0},
		},
		WIP: map[LineStyle]int64{
			{Line: "line-21", StyleID: "A"}: 10,
			{Line: "line-22", StyleID: "B"}: 100,
		},
		Efficiency: Rollup{Lines: map[string]float64{"line-21": 40, "line-22": 80, "line-23": 0}},
		Targets: []production.LineTarget{
			{Line: "line-22", TotalTargetQty: 400},
		},
		Defects: []production.DefectRecord{
			{Line: "line-21", Quantity: 3},
		},
		Breakdowns: []production.BreakdownRecord{
			{Line: "line-22", StartedAt: at(9), EndedAt: at(10)},
		},
		Attendance: map[string]Attendance{
			"line-22": {Active: 20, Present: 18},
		},
	}

	rows := BuildLineRows(in)

	require.Len(t, rows, 3)
	assert.Equal(t, dashboard.LineComparisonRow{
		Line:             "line-22",
		Loading:          550,
		Offloading:       450,
		Wip:              100,
		Target:           400,
		AchievementPct:   112.5,
		Variance:         50,
		VariancePct:      12.5,
		Efficiency:       80,
		BreakdownMin:     60,
		ActiveEmployees:  20,
		PresentEmployees: 18,
		AttendancePct:    90,
	}, rows[0])
	assert.Equal(t, "line-21", rows[1].Line)
	assert.Equal(t, int64(3), rows[1].Defects)
	assert.Equal(t, 0.0, rows[1].AchievementPct)
	assert.Equal(t, "line-23", rows[2].Line)
	assert.Equal(t, int64(0), rows[2].Loading)
}

func TestAttendanceByLine(t *testing.T) {
	roster := []production.EmployeeRecord{
		{ID: "1061301", Line: "line-21", Shift: production.ShiftDay, Active: true},
		{ID: "1061302", Line: "line-21", Shift: production.ShiftDay, Active: true},
		{ID: "1061303", Line: "line-21", Shift: production.ShiftNight, Active: true},
		{ID: "1061304", Line: "line-21", Shift: production.ShiftDay, Active: false},
	}
	events := []production.ProductionEvent{
		event("line-21", "A", "1061301", opSewing, 0, 0),
	}

	dayShift := AttendanceByLine(events, roster, []production.Shift{production.ShiftDay}, NewHeadcountResolver("10613"))
	assert.Equal(t, Attendance{Active: 2, Present: 1}, dayShift["line-21"])
	assert.Equal(t, 50.0, dayShift["line-21"].Pct())

	all := AttendanceByLine(events, roster, nil, NewHeadcountResolver("10613"))
	assert.Equal(t, 3, all["line-21"].Active)

	assert.Equal(t, 0.0, Attendance{}.Pct())
	assert.Equal(t, 100.0, Attendance{Active: 1, Present: 3}.Pct())
}

func TestLineShares(t *testing.T) {
	totals := []GroupTotal{
		{Key: GroupKey{Line: "line-21"}, Loading: 300, Unloading: 150},
		{Key: GroupKey{Line: "line-22"}, Loading: 100, Unloading: 50},
	}
	wip := map[LineStyle]int64{
		{Line: "line-21"}: 150,
		{Line: "line-22"}: -50,
	}

	rows := LineShares(totals, wip, []string{"line-21", "line-22", "line-23"})

	require.Len(t, rows, 3)
	assert.Equal(t, dashboard.LineShareRow{
		Line: "line-21", Loading: 300, LoadingPct: 75, Offloading: 150, OffloadingPct: 75,
		FlowEfficiency: 50, Wip: 150, WipPct: 75,
	}, rows[0])
	assert.Equal(t, 25.0, rows[1].WipPct)
	assert.Equal(t, "line-23", rows[2].Line)
	assert.Equal(t, 0.0, rows[2].FlowEfficiency)
}

func TestTargets(t *testing.T) {
	targets := []production.LineTarget{
		{Line: "line-21", Shift: production.ShiftDay, TotalTargetQty: 600},
		{Line: "line-21", Shift: production.ShiftNight, TotalTargetQty: 400},
		{Line: "line-22", Shift: production.ShiftDay, TotalTargetQty: 1000},
	}

	dayOnly := FilterTargetsByShift(targets, []production.Shift{production.ShiftDay})
	assert.Len(t, dayOnly, 2)
	assert.Len(t, FilterTargetsByShift(targets, nil), 3)

	summary := TargetSummary(targets, 1500)
	assert.Equal(t, int64(2000), summary.TotalTargets)
	assert.Equal(t, int64(-500), summary.Variance)
	assert.Equal(t, -25.0, summary.VariancePct)
	assert.Equal(t, 75.0, summary.AchievementRate)
	assert.Equal(t, 3, summary.TargetLines)

	rows, total := LineWiseTargets(targets, map[string]int64{"line-21": 500})
	assert.Equal(t, int64(2000), total)
	require.Len(t, rows, 2)
	assert.Equal(t, dashboard.LineWiseTarget{Line: "line-21", TargetQty: 1000, ActualQty: 500, TargetPercentage: 50, AchievementRate: 50}, rows[0])
	assert.Equal(t, 0.0, rows[1].AchievementRate)
}
