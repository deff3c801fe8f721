package efficiency

import (
	"sort"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/numeric"
)

// LineShares reports each line's share of loading, offloading and WIP, largest loading first.
func LineShares(totals []GroupTotal, wip map[LineStyle]int64, lines []string) []dashboard.LineShareRow {
	rows := make(map[string]*dashboard.LineShareRow)
	for _, l := range lines {
		rows[l] = &dashboard.LineShareRow{Line: l}
	}
	get := func(line string) *dashboard.LineShareRow {
		r, ok := rows[line]
		if !ok {
			r = &dashboard.LineShareRow{Line: line}
			rows[line] = r
		}
		return r
	}

	var loading, offloading, absWIP int64
	for _, t := range totals {
		r := get(t.Key.Line)
		r.Loading += t.Loading
		r.Offloading += t.Unloading
		loading += t.Loading
		offloading += t.Unloading
	}
	for ls, w := range wip {
		get(ls.Line).Wip += w
	}
	for _, r := range rows {
		absWIP += abs(r.Wip)
	}

	out := make([]dashboard.LineShareRow, 0, len(rows))
	for _, r := range rows {
		r.LoadingPct = numeric.Percent(float64(r.Loading), float64(loading), 1)
		r.OffloadingPct = numeric.Percent(float64(r.Offloading), float64(offloading), 1)
		r.FlowEfficiency = numeric.Percent(float64(r.Offloading), float64(r.Loading), 1)
		r.WipPct = numeric.Clamp(numeric.Percent(float64(abs(r.Wip)), float64(absWIP), 1), 0, 100)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Loading != out[j].Loading {
			return out[i].Loading > out[j].Loading
		}
		return out[i].Line < out[j].Line
	})
	return out
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
