package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/hangerline/hangerline-backend-go/internal/domain/dashboard"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/fixtures"
	"github.com/hangerline/hangerline-backend-go/internal/service/efficiency"
	"golang.org/x/sync/errgroup"
)

// Options configures the dashboard service.
type Options struct {
	Policy            efficiency.Policy
	Lines             []string
	TrendDays         int
	DefaultWindowDays int
	Location          *time.Location
	Now               func() time.Time
}

type DashboardServiceImpl struct {
	store production.RecordStore
	calc  *efficiency.Calculator
	opts  Options
}

func NewDashboardService(store production.RecordStore, opts Options) dashboard.DashboardService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.TrendDays <= 0 {
		opts.TrendDays = 30
	}
	if opts.DefaultWindowDays <= 0 {
		opts.DefaultWindowDays = 1
	}
	return &DashboardServiceImpl{
		store: store,
		calc:  efficiency.NewCalculator(opts.Policy),
		opts:  opts,
	}
}

func (s *DashboardServiceImpl) today() time.Time {
	return s.opts.Now().In(s.opts.Location)
}

// Sections of the payload, used when reporting which ones hold placeholder data.
const (
	sectionSummary                = "summary"
	sectionLineComparisonRows     = "lineComparisonRows"
	sectionDateWiseEfficiency     = "dateWiseEfficiency"
	sectionLineTrendData          = "lineTrendData"
	sectionProductionDistribution = "pieCharts.productionDistribution"
	sectionDefectBreakdown        = "pieCharts.defectBreakdown"
	sectionLinePerformance        = "pieCharts.linePerformance"
	sectionShiftDistribution      = "pieCharts.shiftDistribution"
	sectionDefectsByReason        = "defectAnalysis.defectsByReason"
	sectionDefectsByLine          = "defectAnalysis.defectsByLine"
	sectionBreakdownAnalysis      = "breakdownAnalysis"
)

var allSections = []string{
	sectionSummary,
	sectionLineComparisonRows,
	sectionDateWiseEfficiency,
	sectionLineTrendData,
	sectionProductionDistribution,
	sectionDefectBreakdown,
	sectionLinePerformance,
	sectionShiftDistribution,
	sectionDefectsByReason,
	sectionDefectsByLine,
	sectionBreakdownAnalysis,
}

// secondary unwraps a non-critical query result. A failure is logged and recorded, and the
// section continues with no rows.
func secondary[T any](r production.QueryResult[T], query string, f filter, failed *[]string) []T {
	if r.Failed() {
		slog.Error("Dashboard query failed, continuing without it", f.logAttrs("query", query, "error", r.Err)...)
		*failed = append(*failed, query)
		return nil
	}
	return r.Rows
}

// GetDashboard returns the combined dashboard payload. Independent store reads run in parallel;
// when the production-event read fails or returns nothing the documented fallback payload is served.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, req dashboard.FilterRequest) *dashboard.DashboardPayload {
	today := s.today()
	f := s.resolveFilter(req, today)
	trendFrom, trendTo := efficiency.TrendWindow(today, s.opts.TrendDays)
	trendFilter := production.EventFilter{From: trendFrom, To: trendTo, Lines: f.Lines, Shifts: f.Shifts}

	var (
		events     production.QueryResult[production.ProductionEvent]
		smv        production.QueryResult[production.StandardMinuteRecord]
		targets    production.QueryResult[production.LineTarget]
		employees  production.QueryResult[production.EmployeeRecord]
		defects    production.QueryResult[production.DefectRecord]
		breakdowns production.QueryResult[production.BreakdownRecord]
		daily      production.QueryResult[production.DailyTotals]
	)

	// Each read reports failure through its QueryResult, so none of these return an error.
	var g errgroup.Group
	g.Go(func() error {
		events = s.store.QueryEvents(ctx, f.events())
		return nil
	})
	g.Go(func() error {
		smv = s.store.QuerySMVRecords(ctx)
		return nil
	})
	g.Go(func() error {
		targets = s.store.QueryTargets(ctx, f.From, f.To, f.Lines)
		return nil
	})
	g.Go(func() error {
		employees = s.store.QueryEmployees(ctx, true)
		return nil
	})
	g.Go(func() error {
		defects = s.store.QueryDefects(ctx, f.events())
		return nil
	})
	g.Go(func() error {
		breakdowns = s.store.QueryBreakdowns(ctx, f.From, f.To)
		return nil
	})
	g.Go(func() error {
		daily = s.store.QueryDailyTotals(ctx, trendFilter, s.opts.Policy.WIPOperations)
		return nil
	})
	_ = g.Wait()

	payload := s.newPayload(ctx, f)

	if events.Failed() {
		slog.Error("Dashboard event query failed, serving fallback payload", f.logAttrs("query", "events", "error", events.Err)...)
		return s.fallback(payload, today, dashboard.ProvenanceFallbackError)
	}
	if events.Empty() || len(s.calc.Totals(events.Rows)) == 0 {
		slog.Info("No loading or offloading events for filter, serving fallback payload", f.logAttrs("events", len(events.Rows))...)
		return s.fallback(payload, today, dashboard.ProvenanceFallbackEmpty)
	}

	var failed []string
	in := liveInputs{
		filter:     f,
		today:      today,
		events:     events.Rows,
		smv:        secondary(smv, "smv_records", f, &failed),
		targets:    secondary(targets, "line_targets", f, &failed),
		employees:  secondary(employees, "employees", f, &failed),
		defects:    secondary(defects, "defects", f, &failed),
		breakdowns: secondary(breakdowns, "breakdowns", f, &failed),
		daily:      secondary(daily, "daily_totals", f, &failed),
	}
	s.assemble(payload, in)

	payload.FailedQueries = failed
	payload.Provenance = dashboard.ProvenanceLive
	if len(failed) > 0 {
		payload.Provenance = dashboard.ProvenancePartial
	}

	slog.Info("Dashboard computed",
		f.logAttrs(
			"request_id", payload.RequestID,
			"provenance", payload.Provenance,
			"events", len(events.Rows),
			"metrics", len(payload.DateWiseEfficiency),
			"synthetic_sections", payload.SyntheticSections,
		)...)
	return payload
}

func (s *DashboardServiceImpl) newPayload(ctx context.Context, f filter) *dashboard.DashboardPayload {
	requestID := middleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return &dashboard.DashboardPayload{
		RequestID:         requestID,
		GeneratedAt:       s.opts.Now().UTC().Format(time.RFC3339),
		Filters:           f.applied(),
		SyntheticSections: []string{},
	}
}

func (s *DashboardServiceImpl) fallback(payload *dashboard.DashboardPayload, today time.Time, provenance dashboard.Provenance) *dashboard.DashboardPayload {
	fb := fixtures.DashboardFallback(efficiency.SyntheticTrend(today, s.opts.TrendDays))
	fb.RequestID = payload.RequestID
	fb.GeneratedAt = payload.GeneratedAt
	fb.Filters = payload.Filters
	fb.Provenance = provenance
	fb.SyntheticSections = append([]string(nil), allSections...)
	return &fb
}

type liveInputs struct {
	filter     filter
	today      time.Time
	events     []production.ProductionEvent
	smv        []production.StandardMinuteRecord
	targets    []production.LineTarget
	employees  []production.EmployeeRecord
	defects    []production.DefectRecord
	breakdowns []production.BreakdownRecord
	daily      []production.DailyTotals
}

// assemble fills every payload section from store rows.
func (s *DashboardServiceImpl) assemble(p *dashboard.DashboardPayload, in liveInputs) {
	f := in.filter
	synthetic := func(section string, yes bool) {
		if yes {
			p.SyntheticSections = append(p.SyntheticSections, section)
		}
	}

	smvTable := efficiency.NewSMVTable(in.smv, s.opts.Policy)
	metrics := s.calc.Compute(in.events, smvTable)
	totals := s.calc.Totals(in.events)
	wip := s.calc.WIP().ByLineStyle(in.events)
	rollup := efficiency.RollupEfficiency(metrics, f.Lines)
	targets := efficiency.FilterTargetsByShift(in.targets, f.Shifts)
	breakdowns := filterBreakdowns(in.breakdowns, f)
	attendance := efficiency.AttendanceByLine(in.events, in.employees, f.Shifts, s.calc.Headcount())

	rows := efficiency.BuildLineRows(efficiency.LineInputs{
		Lines:      f.Lines,
		Totals:     totals,
		WIP:        wip,
		Efficiency: rollup,
		Targets:    targets,
		Defects:    in.defects,
		Breakdowns: breakdowns,
		Attendance: attendance,
	})

	// Summary
	var summary dashboard.Summary
	for _, t := range totals {
		summary.TotalLoading += t.Loading
		summary.TotalOffloading += t.Unloading
	}
	for _, w := range wip {
		summary.TotalWip += w
	}
	summary.TotalTarget = efficiency.SumTargets(targets)
	v := efficiency.ComputeVariance(summary.TotalOffloading, summary.TotalTarget)
	summary.Variance = v.Variance
	summary.VariancePct = v.VariancePct
	summary.AchievementPct = v.AchievementPct
	summary.Efficiency = rollup.Fleet
	summary.ActiveLines = len(rollup.Active)

	var fleetAttendance efficiency.Attendance
	for _, line := range f.Lines {
		fleetAttendance = fleetAttendance.Add(attendance[line])
	}
	summary.AttendancePct = fleetAttendance.Pct()

	for _, d := range in.defects {
		summary.Defects += d.Quantity
	}
	breakdownAnalysis := efficiency.BreakdownByCategory(breakdowns)
	summary.BreakdownTimeMin = breakdownAnalysis.TotalMinutes

	p.Summary = summary
	p.LineComparisonRows = rows
	p.DateWiseEfficiency = metrics
	p.BreakdownAnalysis = breakdownAnalysis

	// Trend
	p.LineTrendData = efficiency.BuildTrend(in.today, s.opts.TrendDays, in.daily)
	synthetic(sectionLineTrendData, efficiency.HasSynthetic(p.LineTrendData))

	// Charts
	var isSynthetic bool
	p.PieCharts.ProductionDistribution, isSynthetic = efficiency.ProductionDistribution(summary.TotalOffloading, summary.TotalTarget)
	synthetic(sectionProductionDistribution, isSynthetic)

	reasons, reasonsSynthetic := efficiency.DefectsByReason(in.defects)
	p.PieCharts.DefectBreakdown, isSynthetic = efficiency.DefectBreakdown(reasons, reasonsSynthetic)
	synthetic(sectionDefectBreakdown, isSynthetic)

	p.PieCharts.LinePerformance, isSynthetic = efficiency.LinePerformance(rows)
	synthetic(sectionLinePerformance, isSynthetic)

	p.PieCharts.ShiftDistribution, isSynthetic = efficiency.ShiftDistribution(in.events, s.calc.WIP())
	synthetic(sectionShiftDistribution, isSynthetic)

	// Defects
	byLine, byLineSynthetic := efficiency.DefectsByLine(in.defects)
	p.DefectAnalysis = dashboard.DefectAnalysis{
		DefectsByReason: reasons,
		DefectsByLine:   byLine,
		TotalDefects:    summary.Defects,
		DefectRecords:   efficiency.DefectRecords(in.defects, efficiency.MaxDefectRecords),
	}
	synthetic(sectionDefectsByReason, reasonsSynthetic)
	synthetic(sectionDefectsByLine, byLineSynthetic)
}

func filterBreakdowns(breakdowns []production.BreakdownRecord, f filter) []production.BreakdownRecord {
	out := make([]production.BreakdownRecord, 0, len(breakdowns))
	for _, b := range breakdowns {
		if f.hasLine(b.Line) && f.hasShift(b.Shift) {
			out = append(out, b)
		}
	}
	return out
}

// GetTrend returns a fixed-length daily series ending today.
func (s *DashboardServiceImpl) GetTrend(ctx context.Context, req dashboard.TrendRequest) *dashboard.TrendResponse {
	today := s.today()
	days := s.resolveTrendDays(req.Days)
	from, to := efficiency.TrendWindow(today, days)
	f := filter{From: from, To: to, Lines: s.resolveLines(req.Line), Shifts: resolveShifts(req.Shift)}

	resp := &dashboard.TrendResponse{Days: days, Provenance: dashboard.ProvenanceLive}

	daily := s.store.QueryDailyTotals(ctx, f.events(), s.opts.Policy.WIPOperations)
	switch {
	case daily.Failed():
		slog.Error("Trend query failed, serving synthetic series", f.logAttrs("query", "daily_totals", "error", daily.Err)...)
		resp.Provenance = dashboard.ProvenanceFallbackError
	case daily.Empty():
		resp.Provenance = dashboard.ProvenanceFallbackEmpty
	}

	resp.Points = efficiency.BuildTrend(today, days, daily.Rows)
	return resp
}

// GetLineShares returns each line's share of loading, offloading and WIP.
func (s *DashboardServiceImpl) GetLineShares(ctx context.Context, req dashboard.FilterRequest) (*dashboard.LineSharesResponse, error) {
	f := s.resolveFilter(req, s.today())

	events := s.store.QueryEvents(ctx, f.events())
	if events.Failed() {
		slog.Error("Line share query failed", f.logAttrs("query", "events", "error", events.Err)...)
		return nil, fmt.Errorf("%w: %v", production.ErrQueryFailed, events.Err)
	}

	rows := efficiency.LineShares(s.calc.Totals(events.Rows), s.calc.WIP().ByLineStyle(events.Rows), f.Lines)
	return &dashboard.LineSharesResponse{Filters: f.applied(), Rows: rows}, nil
}

// targetsAndOffloading reads targets and events for a filter in parallel.
func (s *DashboardServiceImpl) targetsAndOffloading(ctx context.Context, f filter) ([]production.LineTarget, []efficiency.GroupTotal, error) {
	var (
		targets production.QueryResult[production.LineTarget]
		events  production.QueryResult[production.ProductionEvent]
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		targets = s.store.QueryTargets(gCtx, f.From, f.To, f.Lines)
		if targets.Failed() {
			return fmt.Errorf("line_targets: %w", targets.Err)
		}
		return nil
	})
	g.Go(func() error {
		events = s.store.QueryEvents(gCtx, f.events())
		if events.Failed() {
			return fmt.Errorf("events: %w", events.Err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("Line target query failed", f.logAttrs("error", err)...)
		return nil, nil, fmt.Errorf("%w: %v", production.ErrQueryFailed, err)
	}

	return efficiency.FilterTargetsByShift(targets.Rows, f.Shifts), s.calc.Totals(events.Rows), nil
}

// GetLineTargetSummary compares the targets in the window with the offloading achieved.
func (s *DashboardServiceImpl) GetLineTargetSummary(ctx context.Context, req dashboard.FilterRequest) (*dashboard.LineTargetSummary, error) {
	f := s.resolveFilter(req, s.today())

	targets, totals, err := s.targetsAndOffloading(ctx, f)
	if err != nil {
		return nil, err
	}

	var offloading int64
	for _, t := range totals {
		offloading += t.Unloading
	}

	summary := efficiency.TargetSummary(targets, offloading)
	summary.StartDate = f.From.Format(production.DateLayout)
	summary.EndDate = f.To.Format(production.DateLayout)
	return &summary, nil
}

// GetLineWiseTargets returns each targeted line's share of the total target and its achievement.
func (s *DashboardServiceImpl) GetLineWiseTargets(ctx context.Context, req dashboard.FilterRequest) (*dashboard.LineWiseTargetsResponse, error) {
	f := s.resolveFilter(req, s.today())

	targets, totals, err := s.targetsAndOffloading(ctx, f)
	if err != nil {
		return nil, err
	}

	rows, total := efficiency.LineWiseTargets(targets, efficiency.OffloadingByLine(totals))
	return &dashboard.LineWiseTargetsResponse{
		StartDate:      f.From.Format(production.DateLayout),
		EndDate:        f.To.Format(production.DateLayout),
		Data:           rows,
		TotalTargetQty: total,
	}, nil
}
