package linetarget

import "context"

type LineTargetService interface {
	Create(ctx context.Context, req CreateLineTargetRequest) (*LineTargetResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateRequest) (*BulkCreateResponse, error)
	GetByID(ctx context.Context, id string) (*LineTargetResponse, error)

	AddDetail(ctx context.Context, targetID string, req CreateLineTargetDetail) (*LineTargetResponse, error)
	UpdateDetail(ctx context.Context, targetID, detailID string, req UpdateLineTargetDetailRequest) (*LineTargetResponse, error)
	DeleteDetail(ctx context.Context, targetID, detailID string) (*LineTargetResponse, error)
}
