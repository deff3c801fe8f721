package efficiency

import "github.com/hangerline/hangerline-backend-go/internal/pkg/numeric"

// Variance compares actual output to target. Percentages are 0 when there is no target.
type Variance struct {
	Variance       int64
	VariancePct    float64
	AchievementPct float64
}

func ComputeVariance(actual, target int64) Variance {
	v := Variance{Variance: actual - target}
	if target == 0 {
		return v
	}
	v.VariancePct = numeric.Percent(float64(v.Variance), float64(target), 1)
	v.AchievementPct = numeric.Percent(float64(actual), float64(target), 1)
	return v
}
