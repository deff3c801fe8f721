package linetarget

import (
	"context"
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
)

type LineTargetRepository interface {
	Create(ctx context.Context, target production.LineTarget) (production.LineTarget, error)
	GetByID(ctx context.Context, id string) (production.LineTarget, error)
	GetByLineDateShift(ctx context.Context, line string, date time.Time, shift production.Shift) (production.LineTarget, error)

	CreateDetail(ctx context.Context, detail production.LineTargetDetail) (production.LineTargetDetail, error)
	GetDetail(ctx context.Context, targetID, detailID string) (production.LineTargetDetail, error)
	UpdateDetail(ctx context.Context, detail production.LineTargetDetail) (production.LineTargetDetail, error)
	DeleteDetail(ctx context.Context, targetID, detailID string) error
	ListDetails(ctx context.Context, targetID string) ([]production.LineTargetDetail, error)

	// RecalculateTotal sets the target's total to the sum of its detail quantities and returns it
	RecalculateTotal(ctx context.Context, targetID string) (int64, error)
}
