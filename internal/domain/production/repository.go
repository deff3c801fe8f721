package production

import (
	"context"
	"time"
)

// EventFilter narrows record-store reads; an empty Lines or Shifts slice means no restriction.
type EventFilter struct {
	From   time.Time
	To     time.Time
	Lines  []string
	Shifts []Shift
}

// RecordStore is the read-only query surface over the production database.
type RecordStore interface {
	// QueryEvents returns production events with From <= date <= To
	QueryEvents(ctx context.Context, filter EventFilter) QueryResult[ProductionEvent]

	// QuerySMVRecords returns every standard-minute record with a non-null applicable date
	QuerySMVRecords(ctx context.Context) QueryResult[StandardMinuteRecord]

	// QueryTargets returns line targets in the date window for the given lines
	QueryTargets(ctx context.Context, from, to time.Time, lines []string) QueryResult[LineTarget]

	// QueryEmployees returns roster entries, optionally only active ones
	QueryEmployees(ctx context.Context, activeOnly bool) QueryResult[EmployeeRecord]

	// QueryDefects returns quality-repair records
	QueryDefects(ctx context.Context, filter EventFilter) QueryResult[DefectRecord]

	// QueryBreakdowns returns downtime records in the date window
	QueryBreakdowns(ctx context.Context, from, to time.Time) QueryResult[BreakdownRecord]

	// QueryDailyTotals returns per-day loading/offloading restricted to the given operations
	QueryDailyTotals(ctx context.Context, filter EventFilter, operations []string) QueryResult[DailyTotals]
}
