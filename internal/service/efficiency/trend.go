package efficiency

import (
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/fixtures"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/numeric"
)

// CivilDate drops the clock part of t, keeping the calendar date as seen in t's location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TrendWindow returns the first and last calendar day of a days-long window ending today.
func TrendWindow(today time.Time, days int) (from, to time.Time) {
	to = CivilDate(today)
	if days < 1 {
		days = 1
	}
	return to.AddDate(0, 0, -(days - 1)), to
}

// BuildTrend returns exactly one point per day of the window, oldest first. Days missing from
// series are filled from the synthetic pattern and flagged as such.
func BuildTrend(today time.Time, days int, series []production.DailyTotals) []dashboard.TrendPoint {
	if days <= 0 {
		return []dashboard.TrendPoint{}
	}

	byDate := make(map[string]production.DailyTotals, len(series))
	for _, s := range series {
		byDate[s.Date.Format(production.DateLayout)] = s
	}

	from, _ := TrendWindow(today, days)
	points := make([]dashboard.TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format(production.DateLayout)
		s, ok := byDate[date]
		if !ok {
			points = append(points, fixtures.SyntheticTrendPoint(i, date))
			continue
		}
		points = append(points, dashboard.TrendPoint{
			Date:       date,
			Loading:    s.Loading,
			Offloading: s.Offloading,
			Efficiency: numeric.Round(s.EfficiencyPct, 1),
			Wip:        s.Loading - s.Offloading,
		})
	}
	return points
}

// SyntheticTrend is a window made only of synthetic points.
func SyntheticTrend(today time.Time, days int) []dashboard.TrendPoint {
	return BuildTrend(today, days, nil)
}

// HasSynthetic reports whether any point was filled in.
func HasSynthetic(points []dashboard.TrendPoint) bool {
	for _, p := range points {
		if p.Synthetic {
			return true
		}
	}
	return false
}
