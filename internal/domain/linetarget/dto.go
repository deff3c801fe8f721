package linetarget

import (
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/validator"
)

type CreateLineTargetRequest struct {
	Line       string                   `json:"line" validate:"required,max=10"`
	TargetDate string                   `json:"target_date" validate:"required,isodate"`
	Shift      string                   `json:"shift" validate:"required,oneof=Day Night"`
	LoadingQty int64                    `json:"loading_qty" validate:"gte=0"`
	Remarks    *string                  `json:"remarks,omitempty" validate:"omitempty,max=500"`
	Details    []CreateLineTargetDetail `json:"details" validate:"dive"`
}

func (r *CreateLineTargetRequest) Validate() error {
	return validator.Struct(r)
}

// Date returns the parsed target date; call after Validate.
func (r *CreateLineTargetRequest) Date() time.Time {
	d, _ := validator.IsValidDate(r.TargetDate)
	return d
}

type CreateLineTargetDetail struct {
	PONo      *string `json:"pono,omitempty"`
	StyleID   *string `json:"st_id,omitempty"`
	ItemID    *string `json:"item_id,omitempty"`
	ItemTitle *string `json:"item_title,omitempty"`
	TargetQty int64   `json:"target_qty" validate:"gte=0"`
	Shift     *string `json:"shift,omitempty" validate:"omitempty,oneof=Day Night"`
}

func (d *CreateLineTargetDetail) Validate() error {
	return validator.Struct(d)
}

// BulkCreateRequest creates a Day and a Night target for every line from one daily quantity.
type BulkCreateRequest struct {
	TargetDate string           `json:"target_date" validate:"required,isodate"`
	Lines      []BulkLineTarget `json:"lines" validate:"required,min=1,dive"`
	Remarks    *string          `json:"remarks,omitempty" validate:"omitempty,max=500"`
}

func (r *BulkCreateRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	seen := make(map[string]struct{}, len(r.Lines))
	for _, l := range r.Lines {
		if _, dup := seen[l.Line]; dup {
			errs = append(errs, validator.ValidationError{
				Field:   "lines",
				Message: "line " + l.Line + " is listed more than once",
			})
		}
		seen[l.Line] = struct{}{}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *BulkCreateRequest) Date() time.Time {
	d, _ := validator.IsValidDate(r.TargetDate)
	return d
}

type BulkLineTarget struct {
	Line       string `json:"line" validate:"required,max=10"`
	DailyQty   int64  `json:"daily_qty" validate:"gte=0"`
	LoadingQty int64  `json:"loading_qty" validate:"gte=0"`
}

type UpdateLineTargetDetailRequest struct {
	PONo      *string `json:"pono,omitempty"`
	StyleID   *string `json:"st_id,omitempty"`
	ItemID    *string `json:"item_id,omitempty"`
	ItemTitle *string `json:"item_title,omitempty"`
	TargetQty *int64  `json:"target_qty,omitempty" validate:"omitempty,gte=0"`
	Shift     *string `json:"shift,omitempty" validate:"omitempty,oneof=Day Night"`
}

func (r *UpdateLineTargetDetailRequest) Validate() error {
	return validator.Struct(r)
}

// ========== RESPONSES ==========

type LineTargetResponse struct {
	ID             string                     `json:"id"`
	Line           string                     `json:"line"`
	TargetDate     string                     `json:"target_date"`
	Shift          string                     `json:"shift"`
	TotalTargetQty int64                      `json:"total_target_qty"`
	LoadingQty     int64                      `json:"loading_qty"`
	Remarks        *string                    `json:"remarks,omitempty"`
	Details        []LineTargetDetailResponse `json:"details"`
}

type LineTargetDetailResponse struct {
	ID        string  `json:"id"`
	PONo      *string `json:"pono,omitempty"`
	StyleID   *string `json:"st_id,omitempty"`
	ItemID    *string `json:"item_id,omitempty"`
	ItemTitle *string `json:"item_title,omitempty"`
	TargetQty int64   `json:"target_qty"`
	Shift     *string `json:"shift,omitempty"`
}

type BulkCreateResponse struct {
	TargetDate string               `json:"target_date"`
	Created    []LineTargetResponse `json:"created"`
}

func NewLineTargetResponse(t production.LineTarget, details []production.LineTargetDetail) LineTargetResponse {
	resp := LineTargetResponse{
		ID:             t.ID,
		Line:           t.Line,
		TargetDate:     t.TargetDate.Format(production.DateLayout),
		Shift:          string(t.Shift),
		TotalTargetQty: t.TotalTargetQty,
		LoadingQty:     t.LoadingQty,
		Remarks:        t.Remarks,
		Details:        make([]LineTargetDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, NewLineTargetDetailResponse(d))
	}
	return resp
}

func NewLineTargetDetailResponse(d production.LineTargetDetail) LineTargetDetailResponse {
	var shift *string
	if d.Shift != nil {
		s := string(*d.Shift)
		shift = &s
	}
	return LineTargetDetailResponse{
		ID:        d.ID,
		PONo:      d.PONo,
		StyleID:   d.StyleID,
		ItemID:    d.ItemID,
		ItemTitle: d.ItemTitle,
		TargetQty: d.TargetQty,
		Shift:     shift,
	}
}
