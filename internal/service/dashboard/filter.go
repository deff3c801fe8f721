package dashboard

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/validator"
	"github.com/hangerline/hangerline-backend-go/internal/service/efficiency"
)

const maxTrendDays = 366

// filter is a request's parameters after defaults have been applied.
type filter struct {
	From   time.Time
	To     time.Time
	Lines  []string
	Shifts []production.Shift
}

func (f filter) events() production.EventFilter {
	return production.EventFilter{From: f.From, To: f.To, Lines: f.Lines, Shifts: f.Shifts}
}

func (f filter) applied() dashboard.AppliedFilter {
	shifts := make([]string, 0, len(f.Shifts))
	for _, s := range f.Shifts {
		shifts = append(shifts, string(s))
	}
	return dashboard.AppliedFilter{
		StartDate: f.From.Format(production.DateLayout),
		EndDate:   f.To.Format(production.DateLayout),
		Lines:     append([]string(nil), f.Lines...),
		Shifts:    shifts,
	}
}

func (f filter) logAttrs(extra ...any) []any {
	attrs := []any{
		"start_date", f.From.Format(production.DateLayout),
		"end_date", f.To.Format(production.DateLayout),
		"lines", f.Lines,
		"shifts", f.Shifts,
	}
	return append(attrs, extra...)
}

func (f filter) hasLine(line string) bool {
	for _, l := range f.Lines {
		if l == line {
			return true
		}
	}
	return false
}

func (f filter) hasShift(shift production.Shift) bool {
	for _, s := range f.Shifts {
		if s == shift {
			return true
		}
	}
	return false
}

// resolveFilter applies defaults: an unusable date range becomes the default window ending today,
// an empty or "All" line means every configured line, and an unknown shift means both shifts.
func (s *DashboardServiceImpl) resolveFilter(req dashboard.FilterRequest, today time.Time) filter {
	var f filter

	start, okStart := validator.IsValidDate(strings.TrimSpace(req.StartDate))
	end, okEnd := validator.IsValidDate(strings.TrimSpace(req.EndDate))
	if okStart && okEnd && !end.Before(start) {
		f.From, f.To = start, end
	} else {
		if req.StartDate != "" || req.EndDate != "" {
			slog.Warn("Unusable dashboard date range, using default window",
				"start_date", req.StartDate, "end_date", req.EndDate)
		}
		f.From, f.To = efficiency.TrendWindow(today, s.opts.DefaultWindowDays)
	}

	f.Lines = s.resolveLines(req.Line)
	f.Shifts = resolveShifts(req.Shift)
	return f
}

func (s *DashboardServiceImpl) resolveLines(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" || strings.EqualFold(line, "all") {
		return append([]string(nil), s.opts.Lines...)
	}
	return []string{line}
}

func resolveShifts(shift string) []production.Shift {
	shift = strings.TrimSpace(shift)
	if shift == "" || strings.EqualFold(shift, "all") {
		return append([]production.Shift(nil), production.AllShifts...)
	}
	for _, s := range production.AllShifts {
		if strings.EqualFold(shift, string(s)) {
			return []production.Shift{s}
		}
	}
	slog.Warn("Unknown shift filter, using all shifts", "shift", shift)
	return append([]production.Shift(nil), production.AllShifts...)
}

// resolveTrendDays parses the requested window length, falling back to the configured default.
func (s *DashboardServiceImpl) resolveTrendDays(days string) int {
	days = strings.TrimSpace(days)
	if days == "" {
		return s.opts.TrendDays
	}
	n, err := strconv.Atoi(days)
	if err != nil || n < 1 || n > maxTrendDays {
		slog.Warn("Invalid trend window, using default", "days", days, "default", s.opts.TrendDays)
		return s.opts.TrendDays
	}
	return n
}
