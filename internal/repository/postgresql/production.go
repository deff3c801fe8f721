package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type productionRepositoryImpl struct {
	db *database.DB
}

func NewProductionRepository(db *database.DB) production.RecordStore {
	return &productionRepositoryImpl{db: db}
}

// queryRows runs query and scans every row with scan. Failures of any step come back as a
// failed QueryResult tagged with name.
func queryRows[T any](ctx context.Context, q database.Querier, name, query string, scan func(pgx.Rows) (T, error), args ...any) production.QueryResult[T] {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return production.Failed[T](fmt.Errorf("query %s: %w", name, err))
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return production.Failed[T](fmt.Errorf("scan %s: %w", name, err))
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return production.Failed[T](fmt.Errorf("iterate %s: %w", name, err))
	}
	return production.Ok(out)
}

// textArray turns an empty filter into NULL, which the queries read as "no restriction".
func textArray(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return values
}

func shiftArray(shifts []production.Shift) []string {
	if len(shifts) == 0 {
		return nil
	}
	out := make([]string, len(shifts))
	for i, s := range shifts {
		out[i] = string(s)
	}
	return out
}

// QueryEvents implements production.RecordStore.
func (r *productionRepositoryImpl) QueryEvents(ctx context.Context, filter production.EventFilter) production.QueryResult[production.ProductionEvent] {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			odp_date,
			COALESCE(shift, ''),
			COALESCE(source_connection, ''),
			COALESCE(st_id, ''),
			COALESCE(odp_em_key::TEXT, ''),
			COALESCE(oc_description, ''),
			COALESCE(loading_qty, 0)::BIGINT,
			COALESCE(unloading_qty, 0)::BIGINT,
			COALESCE(odpd_lot_number, '')
		FROM operator_daily_performance
		WHERE odp_date >= $1 AND odp_date <= $2
		  AND ($3::TEXT[] IS NULL OR source_connection = ANY($3))
		  AND ($4::TEXT[] IS NULL OR shift = ANY($4))
		ORDER BY odp_date DESC, source_connection, st_id
	`

	return queryRows(ctx, q, "events", query, func(rows pgx.Rows) (production.ProductionEvent, error) {
		var e production.ProductionEvent
		var shift string
		err := rows.Scan(
			&e.Date,
			&shift,
			&e.Line,
			&e.StyleID,
			&e.OperatorID,
			&e.Operation,
			&e.LoadedQty,
			&e.UnloadedQty,
			&e.LotNumber,
		)
		e.Shift = production.Shift(shift)
		return e, err
	}, filter.From, filter.To, textArray(filter.Lines), shiftArray(filter.Shifts))
}

// QuerySMVRecords implements production.RecordStore.
func (r *productionRepositoryImpl) QuerySMVRecords(ctx context.Context) production.QueryResult[production.StandardMinuteRecord] {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			articleno,
			COALESCE(totalsmv, 0)::FLOAT8,
			COALESCE(conversionfactor, 0)::FLOAT8,
			applicabledate
		FROM operationinformation
		WHERE applicabledate IS NOT NULL AND articleno IS NOT NULL
		ORDER BY applicabledate DESC, articleno
	`

	return queryRows(ctx, q, "smv_records", query, func(rows pgx.Rows) (production.StandardMinuteRecord, error) {
		var s production.StandardMinuteRecord
		err := rows.Scan(&s.StyleID, &s.TotalSMV, &s.ConversionFactor, &s.ApplicableDate)
		return s, err
	})
}

// QueryTargets implements production.RecordStore.
func (r *productionRepositoryImpl) QueryTargets(ctx context.Context, from, to time.Time, lines []string) production.QueryResult[production.LineTarget] {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, source_connection, target_date, shift, total_target_qty, loading_qty, remarks
		FROM line_target
		WHERE target_date >= $1 AND target_date <= $2
		  AND ($3::TEXT[] IS NULL OR source_connection = ANY($3))
		ORDER BY target_date DESC, source_connection, shift
	`

	return queryRows(ctx, q, "line_targets", query, scanLineTarget, from, to, textArray(lines))
}

// QueryEmployees implements production.RecordStore.
func (r *productionRepositoryImpl) QueryEmployees(ctx context.Context, activeOnly bool) production.QueryResult[production.EmployeeRecord] {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(emp_id, ''),
			COALESCE(current_line_id, ''),
			COALESCE(shift, ''),
			COALESCE(activestatus, false)
		FROM hangerline_emp
		WHERE ($1 = false OR activestatus = true)
	`

	return queryRows(ctx, q, "employees", query, func(rows pgx.Rows) (production.EmployeeRecord, error) {
		var e production.EmployeeRecord
		var shift string
		err := rows.Scan(&e.ID, &e.Line, &shift, &e.Active)
		e.Shift = normalizeShift(shift)
		e.Line = strings.ToLower(strings.TrimSpace(e.Line))
		return e, err
	}, activeOnly)
}

// QueryDefects implements production.RecordStore.
func (r *productionRepositoryImpl) QueryDefects(ctx context.Context, filter production.EventFilter) production.QueryResult[production.DefectRecord] {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			qcr_date,
			COALESCE(shift, ''),
			COALESCE(source_connection, ''),
			COALESCE(qcr_defect_em_key::TEXT, ''),
			TRIM(COALESCE(defect_em_firstname, '') || ' ' || COALESCE(defect_em_lastname, '')),
			COALESCE(qcsc_description, ''),
			COALESCE(qcr_defect_quantity, 0)::BIGINT
		FROM quality_control_repair
		WHERE qcr_date >= $1 AND qcr_date <= $2
		  AND ($3::TEXT[] IS NULL OR source_connection = ANY($3))
		  AND ($4::TEXT[] IS NULL OR shift = ANY($4))
		ORDER BY source_connection, qcr_date DESC
	`

	return queryRows(ctx, q, "defects", query, func(rows pgx.Rows) (production.DefectRecord, error) {
		var d production.DefectRecord
		var shift string
		err := rows.Scan(&d.Date, &shift, &d.Line, &d.OperatorID, &d.Operator, &d.Reason, &d.Quantity)
		d.Shift = production.Shift(shift)
		return d, err
	}, filter.From, filter.To, textArray(filter.Lines), shiftArray(filter.Shifts))
}

// QueryBreakdowns implements production.RecordStore.
func (r *productionRepositoryImpl) QueryBreakdowns(ctx context.Context, from, to time.Time) production.QueryResult[production.BreakdownRecord] {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			b.p_date,
			b.line_no,
			b.shift,
			COALESCE(c.name, ''),
			b.time_start,
			b.time_end,
			COALESCE(b.operator_effected, 0)
		FROM breakdown b
		LEFT JOIN breakdown_category c ON c.id = b.breakdown_category_id
		WHERE b.p_date >= $1 AND b.p_date <= $2
		ORDER BY b.p_date DESC, b.time_start DESC
	`

	return queryRows(ctx, q, "breakdowns", query, func(rows pgx.Rows) (production.BreakdownRecord, error) {
		var b production.BreakdownRecord
		var shift string
		err := rows.Scan(&b.Date, &b.Line, &shift, &b.Category, &b.StartedAt, &b.EndedAt, &b.OperatorsAffected)
		b.Shift = production.Shift(shift)
		return b, err
	}, from, to)
}

// QueryDailyTotals implements production.RecordStore.
func (r *productionRepositoryImpl) QueryDailyTotals(ctx context.Context, filter production.EventFilter, operations []string) production.QueryResult[production.DailyTotals] {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			odp_date,
			COALESCE(SUM(loading_qty), 0)::BIGINT,
			COALESCE(SUM(unloading_qty), 0)::BIGINT,
			COALESCE(AVG(efficiency), 0)::FLOAT8
		FROM operator_daily_performance
		WHERE odp_date >= $1 AND odp_date <= $2
		  AND ($3::TEXT[] IS NULL OR source_connection = ANY($3))
		  AND ($4::TEXT[] IS NULL OR shift = ANY($4))
		  AND oc_description = ANY($5)
		GROUP BY odp_date
		ORDER BY odp_date
	`

	return queryRows(ctx, q, "daily_totals", query, func(rows pgx.Rows) (production.DailyTotals, error) {
		var d production.DailyTotals
		err := rows.Scan(&d.Date, &d.Loading, &d.Offloading, &d.EfficiencyPct)
		return d, err
	}, filter.From, filter.To, textArray(filter.Lines), shiftArray(filter.Shifts), operations)
}

// normalizeShift maps roster spellings ("DAY", "night ") onto the production shift values.
func normalizeShift(s string) production.Shift {
	for _, shift := range production.AllShifts {
		if strings.EqualFold(strings.TrimSpace(s), string(shift)) {
			return shift
		}
	}
	return production.Shift(strings.TrimSpace(s))
}
