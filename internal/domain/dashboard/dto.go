package dashboard

// ========== FILTERS ==========

// FilterRequest carries the raw query parameters of a dashboard request.
type FilterRequest struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Line      string // line identifier or "All"
	Shift     string // "Day", "Night" or "All"
}

// TrendRequest carries the raw query parameters of a trend request.
type TrendRequest struct {
	Days  string
	Line  string
	Shift string
}

// AppliedFilter echoes the filter the payload was actually computed for.
type AppliedFilter struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Lines     []string `json:"lines"`
	Shifts    []string `json:"shifts"`
}

// ========== PROVENANCE ==========

type Provenance string

const (
	ProvenanceLive          Provenance = "live"           // computed from store rows
	ProvenancePartial       Provenance = "partial"        // live core, one or more secondary queries failed
	ProvenanceFallbackEmpty Provenance = "fallback_empty" // primary query returned no rows
	ProvenanceFallbackError Provenance = "fallback_error" // primary query failed
)

// ========== COMBINED DASHBOARD ==========

// DashboardPayload is the full response of the dashboard endpoint
type DashboardPayload struct {
	RequestID          string              `json:"requestId"`
	GeneratedAt        string              `json:"generatedAt"`
	Provenance         Provenance          `json:"provenance"`
	SyntheticSections  []string            `json:"syntheticSections"` // sections filled with placeholder data
	FailedQueries      []string            `json:"failedQueries,omitempty"`
	Filters            AppliedFilter       `json:"filters"`
	Summary            Summary             `json:"summary"`
	LineComparisonRows []LineComparisonRow `json:"lineComparisonRows"`
	DateWiseEfficiency []AggregatedMetric  `json:"dateWiseEfficiency"`
	LineTrendData      []TrendPoint        `json:"lineTrendData"`
	PieCharts          PieCharts           `json:"pieCharts"`
	DefectAnalysis     DefectAnalysis      `json:"defectAnalysis"`
	BreakdownAnalysis  BreakdownAnalysis   `json:"breakdownAnalysis"`
}

// Summary holds the headline numbers
type Summary struct {
	TotalLoading     int64   `json:"totalLoading"`
	TotalOffloading  int64   `json:"totalOffloading"`
	TotalWip         int64   `json:"totalWip"`
	TotalTarget      int64   `json:"totalTarget"`
	Variance         int64   `json:"variance"`
	VariancePct      float64 `json:"variancePct"`
	AchievementPct   float64 `json:"achievementPct"`
	Efficiency       float64 `json:"efficiency"`
	ActiveLines      int     `json:"activeLines"`
	AttendancePct    float64 `json:"attendancePct"`
	Defects          int64   `json:"defects"`
	BreakdownTimeMin float64 `json:"breakdownTimeMin"`
}

// LineComparisonRow is the per-line performance record
type LineComparisonRow struct {
	Line             string  `json:"line"`
	Loading          int64   `json:"loading"`
	Offloading       int64   `json:"offloading"`
	Wip              int64   `json:"wip"`
	Target           int64   `json:"target"`
	AchievementPct   float64 `json:"achievementPct"`
	Variance         int64   `json:"variance"`
	VariancePct      float64 `json:"variancePct"`
	Efficiency       float64 `json:"efficiency"`
	Defects          int64   `json:"defects"`
	BreakdownMin     float64 `json:"breakdownMin"`
	ActiveEmployees  int     `json:"activeEmployees"`
	PresentEmployees int     `json:"presentEmployees"`
	AttendancePct    float64 `json:"attendancePct"`
}

// AggregatedMetric is one (date, line, style) efficiency group
type AggregatedMetric struct {
	Date             string  `json:"date"` // Format: "YYYY-MM-DD"
	Line             string  `json:"line"`
	Style            string  `json:"style"`
	StylePrefix      string  `json:"stylePrefix"`
	Loading          int64   `json:"loading"`
	Unloading        int64   `json:"unloading"`
	Wip              int64   `json:"wip"`
	SMV              float64 `json:"smv"`
	ConversionFactor float64 `json:"conversionFactor"`
	SMVDefaulted     bool    `json:"smvDefaulted"` // no SMV record matched the style prefix
	ProducedMinutes  float64 `json:"producedMinutes"`
	Headcount        int     `json:"headcount"`
	EfficiencyPct    float64 `json:"efficiencyPct"`
}

// TrendPoint is one day of the line trend chart
type TrendPoint struct {
	Date       string  `json:"date"` // Format: "YYYY-MM-DD"
	Loading    int64   `json:"loading"`
	Offloading int64   `json:"offloading"`
	Efficiency float64 `json:"efficiency"`
	Wip        int64   `json:"wip"`
	Synthetic  bool    `json:"synthetic"`
}

// ========== CHARTS ==========

type PieSlice struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

type PieCharts struct {
	ProductionDistribution []PieSlice `json:"productionDistribution"`
	DefectBreakdown        []PieSlice `json:"defectBreakdown"`
	LinePerformance        []PieSlice `json:"linePerformance"`
	ShiftDistribution      []PieSlice `json:"shiftDistribution"`
}

// ========== DEFECTS ==========

type DefectAnalysis struct {
	DefectsByReason []DefectReasonShare `json:"defectsByReason"`
	DefectsByLine   []DefectLineShare   `json:"defectsByLine"`
	TotalDefects    int64               `json:"totalDefects"`
	DefectRecords   []DefectRecordItem  `json:"defectRecords"` // Latest 50 records
}

type DefectReasonShare struct {
	Reason     string  `json:"reason"`
	Quantity   int64   `json:"quantity"`
	Percentage float64 `json:"percentage"`
}

type DefectLineShare struct {
	Line     string `json:"line"`
	Quantity int64  `json:"quantity"`
}

type DefectRecordItem struct {
	Date     string `json:"date"`
	Shift    string `json:"shift"`
	Line     string `json:"line"`
	Employee string `json:"employee"`
	Reason   string `json:"reason"`
	Quantity int64  `json:"quantity"`
}

// ========== BREAKDOWNS ==========

type BreakdownAnalysis struct {
	TotalMinutes float64                  `json:"totalMinutes"`
	ByCategory   []BreakdownCategoryShare `json:"byCategory"`
}

type BreakdownCategoryShare struct {
	Category    string  `json:"category"`
	Minutes     float64 `json:"minutes"`
	Occurrences int     `json:"occurrences"`
	Percentage  float64 `json:"percentage"`
}

// ========== TREND ENDPOINT ==========

type TrendResponse struct {
	Days       int          `json:"days"`
	Provenance Provenance   `json:"provenance"`
	Points     []TrendPoint `json:"points"`
}

// ========== LINE SHARES ==========

// LineShareRow is a line's share of loading, offloading and WIP for the window
type LineShareRow struct {
	Line           string  `json:"line"`
	Loading        int64   `json:"loading"`
	LoadingPct     float64 `json:"loadingPct"`
	Offloading     int64   `json:"offloading"`
	OffloadingPct  float64 `json:"offloadingPct"`
	FlowEfficiency float64 `json:"flowEfficiency"` // offloading / loading
	Wip            int64   `json:"wip"`
	WipPct         float64 `json:"wipPct"` // |wip| / |total wip|, capped at 100
}

type LineSharesResponse struct {
	Filters AppliedFilter  `json:"filters"`
	Rows    []LineShareRow `json:"rows"`
}

// ========== LINE TARGETS ==========

type LineTargetSummary struct {
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	TotalTargets    int64   `json:"totalTargets"`
	TotalOffloading int64   `json:"totalOffloading"`
	Variance        int64   `json:"variance"`
	VariancePct     float64 `json:"variancePct"`
	AchievementRate float64 `json:"achievementRate"`
	TargetLines     int     `json:"targetLines"` // number of target rows in the window
}

type LineWiseTarget struct {
	Line             string  `json:"line"`
	TargetQty        int64   `json:"targetQty"`
	ActualQty        int64   `json:"actualQty"`
	TargetPercentage float64 `json:"targetPercentage"`
	AchievementRate  float64 `json:"achievementRate"`
}

type LineWiseTargetsResponse struct {
	StartDate      string           `json:"startDate"`
	EndDate        string           `json:"endDate"`
	Data           []LineWiseTarget `json:"data"`
	TotalTargetQty int64            `json:"totalTargetQty"`
}
