package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/linetarget"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const lineTargetColumns = `id::TEXT, source_connection, target_date, shift, total_target_qty, loading_qty, remarks`

const lineTargetDetailColumns = `id::TEXT, linetarget_id::TEXT, pono, st_id, item_id, item_title, target_qty, shift`

type lineTargetRepositoryImpl struct {
	db *database.DB
}

func NewLineTargetRepository(db *database.DB) linetarget.LineTargetRepository {
	return &lineTargetRepositoryImpl{db: db}
}

func scanLineTargetRow(row pgx.Row) (production.LineTarget, error) {
	var t production.LineTarget
	var shift string
	err := row.Scan(&t.ID, &t.Line, &t.TargetDate, &shift, &t.TotalTargetQty, &t.LoadingQty, &t.Remarks)
	t.Shift = normalizeShift(shift)
	return t, err
}

func scanLineTarget(rows pgx.Rows) (production.LineTarget, error) {
	return scanLineTargetRow(rows)
}

func scanLineTargetDetailRow(row pgx.Row) (production.LineTargetDetail, error) {
	var d production.LineTargetDetail
	var shift *string
	err := row.Scan(&d.ID, &d.LineTargetID, &d.PONo, &d.StyleID, &d.ItemID, &d.ItemTitle, &d.TargetQty, &shift)
	if shift != nil {
		s := normalizeShift(*shift)
		d.Shift = &s
	}
	return d, err
}

func shiftText(s *production.Shift) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

// Create implements linetarget.LineTargetRepository.
func (r *lineTargetRepositoryImpl) Create(ctx context.Context, target production.LineTarget) (production.LineTarget, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO line_target (source_connection, target_date, shift, total_target_qty, loading_qty, remarks)
		VALUES ($1, $2, $3, 0, $4, $5)
		RETURNING ` + lineTargetColumns

	created, err := scanLineTargetRow(q.QueryRow(ctx, query,
		target.Line,
		target.TargetDate,
		string(target.Shift),
		target.LoadingQty,
		target.Remarks,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return production.LineTarget{}, linetarget.ErrLineTargetExists
		}
		return production.LineTarget{}, fmt.Errorf("failed to create line target: %w", err)
	}
	return created, nil
}

// GetByID implements linetarget.LineTargetRepository.
func (r *lineTargetRepositoryImpl) GetByID(ctx context.Context, id string) (production.LineTarget, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + lineTargetColumns + ` FROM line_target WHERE id = $1`

	t, err := scanLineTargetRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.LineTarget{}, linetarget.ErrLineTargetNotFound
		}
		return production.LineTarget{}, fmt.Errorf("failed to get line target: %w", err)
	}
	return t, nil
}

// GetByLineDateShift implements linetarget.LineTargetRepository.
func (r *lineTargetRepositoryImpl) GetByLineDateShift(ctx context.Context, line string, date time.Time, shift production.Shift) (production.LineTarget, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineTargetColumns + `
		FROM line_target
		WHERE source_connection = $1 AND target_date = $2 AND shift = $3
	`

	t, err := scanLineTargetRow(q.QueryRow(ctx, query, line, date, string(shift)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.LineTarget{}, linetarget.ErrLineTargetNotFound
		}
		return production.LineTarget{}, fmt.Errorf("failed to get line target: %w", err)
	}
	return t, nil
}

// CreateDetail implements linetarget.LineTargetRepository.
func (r *lineTargetRepositoryImpl) CreateDetail(ctx context.Context, detail production.LineTargetDetail) (production.LineTargetDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO line_target_detail (linetarget_id, pono, st_id, item_id, item_title, target_qty, shift)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + lineTargetDetailColumns

	created, err := scanLineTargetDetailRow(q.QueryRow(ctx, query,
		detail.LineTargetID,
		detail.PONo,
		detail.StyleID,
		detail.ItemID,
		detail.ItemTitle,
		detail.TargetQty,
		shiftText(detail.Shift),
	))
	if err != nil {
		return production.LineTargetDetail{}, fmt.Errorf("failed to create line target detail: %w", err)
	}
	return created, nil
}

// GetDetail implements linetarget.LineTargetRepository.
func (r *lineTargetRepositoryImpl) GetDetail(ctx context.Context, targetID, detailID string) (production.LineTargetDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineTargetDetailColumns + `
		FROM line_target_detail
		WHERE id = $1 AND linetarget_id = $2
	`

	d, err := scanLineTargetDetailRow(q.QueryRow(ctx, query, detailID, targetID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.LineTargetDetail{}, linetarget.ErrLineTargetDetailNotFound
		}
		return production.LineTargetDetail{}, fmt.Errorf("failed to get line target detail: %w", err)
	}
	return d, nil
}

// UpdateDetail implements linetarget.LineTargetRepository.
func (r *lineTargetRepositoryImpl) UpdateDetail(ctx context.Context, detail production.LineTargetDetail) (production.LineTargetDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE line_target_detail
		SET pono = $3, st_id = $4, item_id = $5, item_title = $6, target_qty = $7, shift = $8
		WHERE id = $1 AND linetarget_id = $2
		RETURNING ` + lineTargetDetailColumns

	updated, err := scanLineTargetDetailRow(q.QueryRow(ctx, query,
		detail.ID,
		detail.LineTargetID,
		detail.PONo,
		detail.StyleID,
		detail.ItemID,
		detail.ItemTitle,
		detail.TargetQty,
		shiftText(detail.Shift),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.LineTargetDetail{}, linetarget.ErrLineTargetDetailNotFound
		}
		return production.LineTargetDetail{}, fmt.Errorf("failed to update line target detail: %w", err)
	}
	return updated, nil
}

// DeleteDetail implements linetarget.LineTargetRepository.
func (r *lineTargetRepositoryImpl) DeleteDetail(ctx context.Context, targetID, detailID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM line_target_detail WHERE id = $1 AND linetarget_id = $2`, detailID, targetID)
	if err != nil {
		return fmt.Errorf("failed to delete line target detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return linetarget.ErrLineTargetDetailNotFound
	}
	return nil
}

// ListDetails implements linetarget.LineTargetRepository.
func (r *lineTargetRepositoryImpl) ListDetails(ctx context.Context, targetID string) ([]production.LineTargetDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineTargetDetailColumns + `
		FROM line_target_detail
		WHERE linetarget_id = $1
		ORDER BY shift NULLS LAST, id
	`

	rows, err := q.Query(ctx, query, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list line target details: %w", err)
	}
	defer rows.Close()

	details := make([]production.LineTargetDetail, 0)
	for rows.Next() {
		d, err := scanLineTargetDetailRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line target detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// RecalculateTotal implements linetarget.LineTargetRepository.
func (r *lineTargetRepositoryImpl) RecalculateTotal(ctx context.Context, targetID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE line_target
		SET total_target_qty = (
			SELECT COALESCE(SUM(target_qty), 0)
			FROM line_target_detail
			WHERE linetarget_id = $1
		)
		WHERE id = $1
		RETURNING total_target_qty
	`

	var total int64
	if err := q.QueryRow(ctx, query, targetID).Scan(&total); err != nil {
		if err == pgx.ErrNoRows {
			return 0, linetarget.ErrLineTargetNotFound
		}
		return 0, fmt.Errorf("failed to recalculate line target total: %w", err)
	}
	return total, nil
}
