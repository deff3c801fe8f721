package efficiency

import (
	"math"
	"sort"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/numeric"
)

// GroupTotal is the allow-listed loading and unloading of one (date, line, style) group.
type GroupTotal struct {
	Key       GroupKey
	Loading   int64
	Unloading int64
}

// Calculator turns raw production events into per-group efficiency metrics.
type Calculator struct {
	policy    Policy
	wip       WIPCalculator
	headcount HeadcountResolver
}

func NewCalculator(policy Policy) *Calculator {
	return &Calculator{
		policy:    policy,
		wip:       NewWIPCalculator(policy.WIPOperations),
		headcount: NewHeadcountResolver(policy.EligibleIDPrefix),
	}
}

func (c *Calculator) Policy() Policy { return c.policy }
func (c *Calculator) WIP() WIPCalculator { return c.wip }
func (c *Calculator) Headcount() HeadcountResolver { return c.headcount }

// Totals groups allow-listed events by (date, line, style), including groups with nothing unloaded.
// Output is ordered by date descending, then line and style.
func (c *Calculator) Totals(events []production.ProductionEvent) []GroupTotal {
	index := make(map[GroupKey]int)
	var totals []GroupTotal
	for _, e := range events {
		if !c.wip.Counts(e.Operation) {
			continue
		}
		k := keyOf(e)
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, GroupTotal{Key: k})
		}
		totals[i].Loading += e.LoadedQty
		totals[i].Unloading += e.UnloadedQty
	}

	sort.Slice(totals, func(i, j int) bool {
		a, b := totals[i].Key, totals[j].Key
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.StyleID < b.StyleID
	})
	return totals
}

// Compute returns one metric per group that unloaded anything. Groups with zero unloading are
// left out so they cannot drag line averages down.
func (c *Calculator) Compute(events []production.ProductionEvent, smv SMVTable) []dashboard.AggregatedMetric {
	totals := c.Totals(events)
	wip := c.wip.ByLineStyle(events)
	heads := c.headcount.ByGroup(events)

	metrics := make([]dashboard.AggregatedMetric, 0, len(totals))
	for _, t := range totals {
		if t.Unloading == 0 {
			continue
		}

		prefix := StylePrefix(t.Key.StyleID)
		sm := smv.Lookup(prefix)
		produced := sm.SMV * sm.ConversionFactor * float64(t.Unloading)
		hc := heads[t.Key]

		metrics = append(metrics, dashboard.AggregatedMetric{
			Date:             t.Key.Date,
			Line:             t.Key.Line,
			Style:            t.Key.StyleID,
			StylePrefix:      prefix,
			Loading:          t.Loading,
			Unloading:        t.Unloading,
			Wip:              wip[LineStyle{Line: t.Key.Line, StyleID: t.Key.StyleID}],
			SMV:              sm.SMV,
			ConversionFactor: sm.ConversionFactor,
			SMVDefaulted:     sm.Defaulted,
			ProducedMinutes:  numeric.Round(produced, 2),
			Headcount:        hc,
			EfficiencyPct:    c.Efficiency(produced, hc),
		})
	}
	return metrics
}

// Efficiency is produced minutes over available minutes as a percentage, rounded to two
// decimals and bounded to [0, CapPct]. Headcount below the floor is raised to it; with a
// zero floor and zero headcount the result is 0.
func (c *Calculator) Efficiency(producedMinutes float64, headcount int) float64 {
	operators := headcount
	if operators < c.policy.HeadcountFloor {
		operators = c.policy.HeadcountFloor
	}
	available := float64(operators) * c.policy.ShiftMinutes
	if available <= 0 || math.IsNaN(producedMinutes) {
		return 0
	}
	pct := numeric.Percent(producedMinutes, available, 2)
	return numeric.Clamp(pct, 0, c.policy.CapPct)
}
