package linetarget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hangerline/hangerline-backend-go/internal/domain/linetarget"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/database"
	"github.com/hangerline/hangerline-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// txRunner runs fn with a context carrying one transaction.
type txRunner func(ctx context.Context, fn func(txCtx context.Context) error) error

func postgresTx(db *database.DB) txRunner {
	return func(ctx context.Context, fn func(txCtx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
			return fn(postgresql.ContextWithTx(ctx, tx))
		})
	}
}

type LineTargetServiceImpl struct {
	repo   linetarget.LineTargetRepository
	withTx txRunner
}

func NewLineTargetService(db *database.DB, repo linetarget.LineTargetRepository) linetarget.LineTargetService {
	return &LineTargetServiceImpl{repo: repo, withTx: postgresTx(db)}
}

// SplitDaily divides a daily quantity between the Day and Night shift; Day gets the odd unit.
func SplitDaily(qty int64) (day, night int64) {
	night = qty / 2
	return qty - night, night
}

func toShiftPtr(s *string) *production.Shift {
	if s == nil {
		return nil
	}
	shift := production.Shift(*s)
	return &shift
}

func (s *LineTargetServiceImpl) load(ctx context.Context, id string) (*linetarget.LineTargetResponse, error) {
	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := s.repo.ListDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list line target details: %w", err)
	}
	resp := linetarget.NewLineTargetResponse(target, details)
	return &resp, nil
}

// createWithDetails inserts a target and its details, then recomputes the total. Must run inside a transaction.
func (s *LineTargetServiceImpl) createWithDetails(txCtx context.Context, target production.LineTarget, details []production.LineTargetDetail) (production.LineTarget, error) {
	if _, err := s.repo.GetByLineDateShift(txCtx, target.Line, target.TargetDate, target.Shift); err == nil {
		return production.LineTarget{}, linetarget.ErrLineTargetExists
	} else if err != linetarget.ErrLineTargetNotFound {
		return production.LineTarget{}, fmt.Errorf("failed to check existing line target: %w", err)
	}

	created, err := s.repo.Create(txCtx, target)
	if err != nil {
		return production.LineTarget{}, err
	}

	for _, d := range details {
		d.LineTargetID = created.ID
		if _, err := s.repo.CreateDetail(txCtx, d); err != nil {
			return production.LineTarget{}, fmt.Errorf("failed to create line target detail: %w", err)
		}
	}

	total, err := s.repo.RecalculateTotal(txCtx, created.ID)
	if err != nil {
		return production.LineTarget{}, err
	}
	created.TotalTargetQty = total
	return created, nil
}

// Create implements linetarget.LineTargetService.
func (s *LineTargetServiceImpl) Create(ctx context.Context, req linetarget.CreateLineTargetRequest) (*linetarget.LineTargetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	target := production.LineTarget{
		Line:       strings.ToLower(strings.TrimSpace(req.Line)),
		TargetDate: req.Date(),
		Shift:      production.Shift(req.Shift),
		LoadingQty: req.LoadingQty,
		Remarks:    req.Remarks,
	}
	details := make([]production.LineTargetDetail, 0, len(req.Details))
	for _, d := range req.Details {
		details = append(details, production.LineTargetDetail{
			PONo:      d.PONo,
			StyleID:   d.StyleID,
			ItemID:    d.ItemID,
			ItemTitle: d.ItemTitle,
			TargetQty: d.TargetQty,
			Shift:     toShiftPtr(d.Shift),
		})
	}

	var id string
	err := s.withTx(ctx, func(txCtx context.Context) error {
		created, err := s.createWithDetails(txCtx, target, details)
		if err != nil {
			return err
		}
		id = created.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Created line target", "line_target_id", id, "line", target.Line, "shift", target.Shift)
	return s.load(ctx, id)
}

// BulkCreate implements linetarget.LineTargetService.
func (s *LineTargetServiceImpl) BulkCreate(ctx context.Context, req linetarget.BulkCreateRequest) (*linetarget.BulkCreateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date := req.Date()
	var ids []string
	err := s.withTx(ctx, func(txCtx context.Context) error {
		for _, l := range req.Lines {
			dayQty, nightQty := SplitDaily(l.DailyQty)
			dayLoading, nightLoading := SplitDaily(l.LoadingQty)
			line := strings.ToLower(strings.TrimSpace(l.Line))

			for _, part := range []struct {
				shift   production.Shift
				qty     int64
				loading int64
			}{
				{production.ShiftDay, dayQty, dayLoading},
				{production.ShiftNight, nightQty, nightLoading},
			} {
				shift := part.shift
				created, err := s.createWithDetails(txCtx, production.LineTarget{
					Line:       line,
					TargetDate: date,
					Shift:      part.shift,
					LoadingQty: part.loading,
					Remarks:    req.Remarks,
				}, []production.LineTargetDetail{{TargetQty: part.qty, Shift: &shift}})
				if err != nil {
					return fmt.Errorf("line %s %s: %w", line, part.shift, err)
				}
				ids = append(ids, created.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &linetarget.BulkCreateResponse{TargetDate: req.TargetDate, Created: make([]linetarget.LineTargetResponse, 0, len(ids))}
	for _, id := range ids {
		t, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		resp.Created = append(resp.Created, *t)
	}

	slog.Info("Bulk created line targets", "target_date", req.TargetDate, "count", len(ids))
	return resp, nil
}

// GetByID implements linetarget.LineTargetService.
func (s *LineTargetServiceImpl) GetByID(ctx context.Context, id string) (*linetarget.LineTargetResponse, error) {
	return s.load(ctx, id)
}

// mutateDetail runs fn and the total recalculation in one transaction.
func (s *LineTargetServiceImpl) mutateDetail(ctx context.Context, targetID string, fn func(txCtx context.Context) error) (*linetarget.LineTargetResponse, error) {
	err := s.withTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetByID(txCtx, targetID); err != nil {
			return err
		}
		if err := fn(txCtx); err != nil {
			return err
		}
		_, err := s.repo.RecalculateTotal(txCtx, targetID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.load(ctx, targetID)
}

// AddDetail implements linetarget.LineTargetService.
func (s *LineTargetServiceImpl) AddDetail(ctx context.Context, targetID string, req linetarget.CreateLineTargetDetail) (*linetarget.LineTargetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.mutateDetail(ctx, targetID, func(txCtx context.Context) error {
		_, err := s.repo.CreateDetail(txCtx, production.LineTargetDetail{
			LineTargetID: targetID,
			PONo:         req.PONo,
			StyleID:      req.StyleID,
			ItemID:       req.ItemID,
			ItemTitle:    req.ItemTitle,
			TargetQty:    req.TargetQty,
			Shift:        toShiftPtr(req.Shift),
		})
		return err
	})
}

// UpdateDetail implements linetarget.LineTargetService.
func (s *LineTargetServiceImpl) UpdateDetail(ctx context.Context, targetID, detailID string, req linetarget.UpdateLineTargetDetailRequest) (*linetarget.LineTargetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.mutateDetail(ctx, targetID, func(txCtx context.Context) error {
		detail, err := s.repo.GetDetail(txCtx, targetID, detailID)
		if err != nil {
			return err
		}

		if req.PONo != nil {
			detail.PONo = req.PONo
		}
		if req.StyleID != nil {
			detail.StyleID = req.StyleID
		}
		if req.ItemID != nil {
			detail.ItemID = req.ItemID
		}
		if req.ItemTitle != nil {
			detail.ItemTitle = req.ItemTitle
		}
		if req.TargetQty != nil {
			detail.TargetQty = *req.TargetQty
		}
		if req.Shift != nil {
			detail.Shift = toShiftPtr(req.Shift)
		}

		_, err = s.repo.UpdateDetail(txCtx, detail)
		return err
	})
}

// DeleteDetail implements linetarget.LineTargetService.
func (s *LineTargetServiceImpl) DeleteDetail(ctx context.Context, targetID, detailID string) (*linetarget.LineTargetResponse, error) {
	return s.mutateDetail(ctx, targetID, func(txCtx context.Context) error {
		return s.repo.DeleteDetail(txCtx, targetID, detailID)
	})
}
