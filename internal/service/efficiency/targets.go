package efficiency

import (
	"sort"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/numeric"
)

// OffloadingByLine sums allow-listed unloading per line.
func OffloadingByLine(totals []GroupTotal) map[string]int64 {
	out := make(map[string]int64)
	for _, t := range totals {
		out[t.Key.Line] += t.Unloading
	}
	return out
}

// FilterTargetsByShift keeps targets on the given shifts; all of them when shifts is empty.
func FilterTargetsByShift(targets []production.LineTarget, shifts []production.Shift) []production.LineTarget {
	inShift := shiftSet(shifts)
	out := make([]production.LineTarget, 0, len(targets))
	for _, t := range targets {
		if inShift(t.Shift) {
			out = append(out, t)
		}
	}
	return out
}

func SumTargets(targets []production.LineTarget) int64 {
	var total int64
	for _, t := range targets {
		total += t.TotalTargetQty
	}
	return total
}

// TargetSummary compares summed targets with the offloading achieved against them.
func TargetSummary(targets []production.LineTarget, offloading int64) dashboard.LineTargetSummary {
	total := SumTargets(targets)
	v := ComputeVariance(offloading, total)
	return dashboard.LineTargetSummary{
		TotalTargets:    total,
		TotalOffloading: offloading,
		Variance:        v.Variance,
		VariancePct:     v.VariancePct,
		AchievementRate: v.AchievementPct,
		TargetLines:     len(targets),
	}
}

// LineWiseTargets reports each targeted line's share of the total target and its achievement.
// Only lines that have a target appear, largest target first.
func LineWiseTargets(targets []production.LineTarget, offloading map[string]int64) ([]dashboard.LineWiseTarget, int64) {
	byLine := make(map[string]int64)
	for _, t := range targets {
		byLine[t.Line] += t.TotalTargetQty
	}
	total := SumTargets(targets)

	out := make([]dashboard.LineWiseTarget, 0, len(byLine))
	for line, target := range byLine {
		actual := offloading[line]
		out = append(out, dashboard.LineWiseTarget{
			Line:             line,
			TargetQty:        target,
			ActualQty:        actual,
			TargetPercentage: numeric.Percent(float64(target), float64(total), 1),
			AchievementRate:  numeric.Percent(float64(actual), float64(target), 1),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TargetQty != out[j].TargetQty {
			return out[i].TargetQty > out[j].TargetQty
		}
		return out[i].Line < out[j].Line
	})
	return out, total
}
