package production

import "time"

// DateLayout is the calendar-date format used for grouping keys and payload dates.
const DateLayout = "2006-01-02"

type Shift string

const (
	ShiftDay   Shift = "Day"
	ShiftNight Shift = "Night"
)

// AllShifts lists every shift a line can run.
var AllShifts = []Shift{ShiftDay, ShiftNight}

// IsValid reports whether s is a known shift.
func (s Shift) IsValid() bool {
	return s == ShiftDay || s == ShiftNight
}

// ProductionEvent is one operator/operation/day row from operator_daily_performance.
type ProductionEvent struct {
	Date        time.Time
	Shift       Shift
	Line        string
	StyleID     string
	OperatorID  string
	Operation   string
	LoadedQty   int64
	UnloadedQty int64
	LotNumber   string
}

// StandardMinuteRecord is one row of operationinformation.
type StandardMinuteRecord struct {
	StyleID          string
	TotalSMV         float64
	ConversionFactor float64
	ApplicableDate   *time.Time
}

type LineTarget struct {
	ID             string
	Line           string
	TargetDate     time.Time
	Shift          Shift
	TotalTargetQty int64
	LoadingQty     int64
	Remarks        *string
}

type LineTargetDetail struct {
	ID           string
	LineTargetID string
	PONo         *string
	StyleID      *string
	ItemID       *string
	ItemTitle    *string
	TargetQty    int64
	Shift        *Shift
}

// EmployeeRecord is a roster entry from hangerline_emp.
type EmployeeRecord struct {
	ID     string
	Line   string
	Shift  Shift
	Active bool
}

type DefectRecord struct {
	Date       time.Time
	Shift      Shift
	Line       string
	OperatorID string
	Operator   string
	Reason     string
	Quantity   int64
}

type BreakdownRecord struct {
	Date              time.Time
	Line              string
	Shift             Shift
	Category          string
	StartedAt         time.Time
	EndedAt           time.Time
	OperatorsAffected int
}

// DurationMinutes is end minus start in minutes; inverted or missing timestamps count as zero.
func (b BreakdownRecord) DurationMinutes() float64 {
	if b.StartedAt.IsZero() || b.EndedAt.IsZero() || b.EndedAt.Before(b.StartedAt) {
		return 0
	}
	return b.EndedAt.Sub(b.StartedAt).Minutes()
}

// DailyTotals is one day of the line trend series.
type DailyTotals struct {
	Date          time.Time
	Loading       int64
	Offloading    int64
	EfficiencyPct float64
}
