package efficiency

import (
	"sort"
	"strings"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/fixtures"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/numeric"
)

const (
	MaxDefectRecords   = 50
	maxDefectSlices    = 5
	maxLinePerformance = 8
	unknownLabel       = "Unknown"
	uncategorizedLabel = "Uncategorized"
)

var palette = []string{
	fixtures.ColorBlue,
	fixtures.ColorRed,
	fixtures.ColorGreen,
	fixtures.ColorAmber,
	fixtures.ColorViolet,
	fixtures.ColorYellow,
	fixtures.ColorLime,
	"#06b6d4",
	"#ec4899",
	"#64748b",
}

func colorAt(i int) string {
	return palette[i%len(palette)]
}

type labelled struct {
	label string
	qty   int64
}

// sumBy totals quantities per label, largest first, ties by label.
func sumBy[T any](items []T, label func(T) string, qty func(T) int64) ([]labelled, int64) {
	index := make(map[string]int)
	var out []labelled
	var total int64
	for _, it := range items {
		l := label(it)
		i, ok := index[l]
		if !ok {
			i = len(out)
			index[l] = i
			out = append(out, labelled{label: l})
		}
		q := qty(it)
		out[i].qty += q
		total += q
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].qty != out[j].qty {
			return out[i].qty > out[j].qty
		}
		return out[i].label < out[j].label
	})
	return out, total
}

func orUnknown(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// DefectsByReason groups defect quantity by reason with each reason's share of the total.
// The second return value is true when the fixed fallback set was used.
func DefectsByReason(defects []production.DefectRecord) ([]dashboard.DefectReasonShare, bool) {
	groups, total := sumBy(defects,
		func(d production.DefectRecord) string { return orUnknown(d.Reason, unknownLabel) },
		func(d production.DefectRecord) int64 { return d.Quantity })
	if total <= 0 {
		return fixtures.FallbackDefectsByReason(), true
	}

	out := make([]dashboard.DefectReasonShare, 0, len(groups))
	for _, g := range groups {
		out = append(out, dashboard.DefectReasonShare{
			Reason:     g.label,
			Quantity:   g.qty,
			Percentage: numeric.Percent(float64(g.qty), float64(total), 1),
		})
	}
	return out, false
}

func DefectsByLine(defects []production.DefectRecord) ([]dashboard.DefectLineShare, bool) {
	groups, total := sumBy(defects,
		func(d production.DefectRecord) string { return orUnknown(d.Line, unknownLabel) },
		func(d production.DefectRecord) int64 { return d.Quantity })
	if total <= 0 {
		return fixtures.FallbackDefectsByLine(), true
	}

	out := make([]dashboard.DefectLineShare, 0, len(groups))
	for _, g := range groups {
		out = append(out, dashboard.DefectLineShare{Line: g.label, Quantity: g.qty})
	}
	return out, false
}

// DefectRecords lists individual defect rows by line, newest first, at most limit of them.
func DefectRecords(defects []production.DefectRecord, limit int) []dashboard.DefectRecordItem {
	sorted := append([]production.DefectRecord(nil), defects...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]dashboard.DefectRecordItem, 0, len(sorted))
	for _, d := range sorted {
		employee := d.OperatorID
		if name := strings.TrimSpace(d.Operator); name != "" {
			employee = strings.TrimSpace(employee + " - " + name)
		}
		out = append(out, dashboard.DefectRecordItem{
			Date:     d.Date.Format(production.DateLayout),
			Shift:    string(d.Shift),
			Line:     d.Line,
			Employee: employee,
			Reason:   orUnknown(d.Reason, unknownLabel),
			Quantity: d.Quantity,
		})
	}
	return out
}

// ProductionDistribution splits output into achieved and still-missing target quantity.
func ProductionDistribution(offloading, target int64) ([]dashboard.PieSlice, bool) {
	if offloading <= 0 {
		return fixtures.FallbackProductionDistribution(), true
	}
	below := target - offloading
	if below < 0 {
		below = 0
	}
	return []dashboard.PieSlice{
		{Label: "Target Achieved", Value: offloading, Color: fixtures.ColorGreen},
		{Label: "Below Target", Value: below, Color: fixtures.ColorRed},
	}, false
}

// DefectBreakdown turns the largest defect reasons into pie slices.
func DefectBreakdown(reasons []dashboard.DefectReasonShare, reasonsSynthetic bool) ([]dashboard.PieSlice, bool) {
	if reasonsSynthetic || len(reasons) == 0 {
		return fixtures.FallbackDefectBreakdown(), true
	}
	n := len(reasons)
	if n > maxDefectSlices {
		n = maxDefectSlices
	}
	out := make([]dashboard.PieSlice, 0, n)
	for i, r := range reasons[:n] {
		out = append(out, dashboard.PieSlice{Label: r.Reason, Value: r.Quantity, Color: colorAt(i)})
	}
	return out, false
}

// LinePerformance shows offloading of the busiest lines.
func LinePerformance(rows []dashboard.LineComparisonRow) ([]dashboard.PieSlice, bool) {
	producing := make([]dashboard.LineComparisonRow, 0, len(rows))
	for _, r := range rows {
		if r.Offloading > 0 {
			producing = append(producing, r)
		}
	}
	if len(producing) == 0 {
		return fixtures.FallbackLinePerformance(), true
	}

	sort.SliceStable(producing, func(i, j int) bool {
		return producing[i].Offloading > producing[j].Offloading
	})
	if len(producing) > maxLinePerformance {
		producing = producing[:maxLinePerformance]
	}

	out := make([]dashboard.PieSlice, 0, len(producing))
	for i, r := range producing {
		out = append(out, dashboard.PieSlice{Label: r.Line, Value: r.Offloading, Color: colorAt(i)})
	}
	return out, false
}

// ShiftDistribution splits allow-listed unloading by the shift it was recorded on.
func ShiftDistribution(events []production.ProductionEvent, wip WIPCalculator) ([]dashboard.PieSlice, bool) {
	byShift := make(map[production.Shift]int64, len(production.AllShifts))
	var total int64
	for _, e := range events {
		if !wip.Counts(e.Operation) {
			continue
		}
		byShift[e.Shift] += e.UnloadedQty
		total += e.UnloadedQty
	}
	if total <= 0 {
		return fixtures.FallbackShiftDistribution(), true
	}

	colors := map[production.Shift]string{
		production.ShiftDay:   fixtures.ColorBlue,
		production.ShiftNight: fixtures.ColorViolet,
	}
	out := make([]dashboard.PieSlice, 0, len(production.AllShifts))
	for _, s := range production.AllShifts {
		if byShift[s] == 0 {
			continue
		}
		out = append(out, dashboard.PieSlice{Label: string(s) + " Shift", Value: byShift[s], Color: colors[s]})
	}
	return out, false
}

// BreakdownByCategory totals downtime minutes per category. An empty input gives an empty analysis.
func BreakdownByCategory(breakdowns []production.BreakdownRecord) dashboard.BreakdownAnalysis {
	type acc struct {
		minutes float64
		count   int
	}
	byCat := make(map[string]*acc)
	var order []string
	var total float64
	for _, b := range breakdowns {
		cat := orUnknown(b.Category, uncategorizedLabel)
		a, ok := byCat[cat]
		if !ok {
			a = &acc{}
			byCat[cat] = a
			order = append(order, cat)
		}
		m := b.DurationMinutes()
		a.minutes += m
		a.count++
		total += m
	}

	out := dashboard.BreakdownAnalysis{
		TotalMinutes: numeric.Round(total, 1),
		ByCategory:   make([]dashboard.BreakdownCategoryShare, 0, len(order)),
	}
	for _, cat := range order {
		a := byCat[cat]
		out.ByCategory = append(out.ByCategory, dashboard.BreakdownCategoryShare{
			Category:    cat,
			Minutes:     numeric.Round(a.minutes, 1),
			Occurrences: a.count,
			Percentage:  numeric.Percent(a.minutes, total, 1),
		})
	}
	sort.SliceStable(out.ByCategory, func(i, j int) bool {
		return out.ByCategory[i].Minutes > out.ByCategory[j].Minutes
	})
	return out
}
