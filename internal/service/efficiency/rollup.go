package efficiency

import (
	"sort"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/numeric"
)

// Rollup is line efficiency weighted by unloaded quantity, and the fleet figure derived from it.
type Rollup struct {
	Lines  map[string]float64
	Active []string // lines with at least one metric, sorted
	Fleet  float64  // unweighted mean over every entry in Lines, idle lines at 0
}

// RollupEfficiency aggregates group metrics per line. When lines is non-empty, metrics for
// other lines are ignored and every listed line gets an entry, 0 when it had no metrics.
func RollupEfficiency(metrics []dashboard.AggregatedMetric, lines []string) Rollup {
	allowed := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		allowed[l] = struct{}{}
	}

	weighted := make(map[string]float64)
	units := make(map[string]int64)
	for _, m := range metrics {
		if len(allowed) > 0 {
			if _, ok := allowed[m.Line]; !ok {
				continue
			}
		}
		weighted[m.Line] += m.EfficiencyPct * float64(m.Unloading)
		units[m.Line] += m.Unloading
	}

	r := Rollup{Lines: make(map[string]float64, len(lines))}
	for _, l := range lines {
		r.Lines[l] = 0
	}

	var sum float64
	for line, u := range units {
		if u == 0 {
			continue
		}
		eff := weighted[line] / float64(u)
		r.Lines[line] = numeric.Round(eff, 1)
		r.Active = append(r.Active, line)
		sum += eff
	}
	sort.Strings(r.Active)

	if len(r.Lines) > 0 {
		r.Fleet = numeric.Round(sum/float64(len(r.Lines)), 1)
	}
	return r
}

// LineInputs is everything needed to build the per-line performance table.
// Targets, defects and breakdowns are expected to be filtered to the requested shifts already.
type LineInputs struct {
	Lines      []string
	Totals     []GroupTotal
	WIP        map[LineStyle]int64
	Efficiency Rollup
	Targets    []production.LineTarget
	Defects    []production.DefectRecord
	Breakdowns []production.BreakdownRecord
	Attendance map[string]Attendance
}

// BuildLineRows returns one row per requested line, busiest (loading + offloading) first.
func BuildLineRows(in LineInputs) []dashboard.LineComparisonRow {
	rows := make(map[string]*dashboard.LineComparisonRow, len(in.Lines))
	order := make([]string, 0, len(in.Lines))
	row := func(line string) *dashboard.LineComparisonRow {
		if r, ok := rows[line]; ok {
			return r
		}
		r := &dashboard.LineComparisonRow{Line: line}
		rows[line] = r
		order = append(order, line)
		return r
	}
	for _, l := range in.Lines {
		row(l)
	}

	for _, t := range in.Totals {
		r := row(t.Key.Line)
		r.Loading += t.Loading
		r.Offloading += t.Unloading
	}
	for ls, wip := range in.WIP {
		row(ls.Line).Wip += wip
	}
	for _, t := range in.Targets {
		row(t.Line).Target += t.TotalTargetQty
	}
	for _, d := range in.Defects {
		row(d.Line).Defects += d.Quantity
	}
	for _, b := range in.Breakdowns {
		row(b.Line).BreakdownMin += b.DurationMinutes()
	}

	out := make([]dashboard.LineComparisonRow, 0, len(order))
	for _, line := range order {
		r := rows[line]
		v := ComputeVariance(r.Offloading, r.Target)
		r.Variance = v.Variance
		r.VariancePct = v.VariancePct
		r.AchievementPct = v.AchievementPct
		r.Efficiency = in.Efficiency.Lines[line]
		r.BreakdownMin = numeric.Round(r.BreakdownMin, 1)

		a := in.Attendance[line]
		r.ActiveEmployees = a.Active
		r.PresentEmployees = a.Present
		r.AttendancePct = a.Pct()

		out = append(out, *r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		vi := out[i].Loading + out[i].Offloading
		vj := out[j].Loading + out[j].Offloading
		if vi != vj {
			return vi > vj
		}
		return out[i].Line < out[j].Line
	})
	return out
}
