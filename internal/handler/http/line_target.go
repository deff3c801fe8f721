package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hangerline/hangerline-backend-go/internal/domain/linetarget"
	"github.com/hangerline/hangerline-backend-go/internal/handler/http/response"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/validator"
)

type LineTargetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	AddDetail(w http.ResponseWriter, r *http.Request)
	UpdateDetail(w http.ResponseWriter, r *http.Request)
	DeleteDetail(w http.ResponseWriter, r *http.Request)
}

type lineTargetHandlerImpl struct {
	lineTargetService linetarget.LineTargetService
}

func NewLineTargetHandler(lineTargetService linetarget.LineTargetService) LineTargetHandler {
	return &lineTargetHandlerImpl{lineTargetService: lineTargetService}
}

// pathIDs reads and validates the UUID path parameters named in keys.
func pathIDs(w http.ResponseWriter, r *http.Request, keys ...string) ([]string, bool) {
	ids := make([]string, len(keys))
	for i, key := range keys {
		ids[i] = chi.URLParam(r, key)
		if !validator.IsValidUUID(ids[i]) {
			response.BadRequest(w, "Invalid "+key, nil)
			return nil, false
		}
	}
	return ids, true
}

// Create handles POST /line-targets
func (h *lineTargetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req linetarget.CreateLineTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLineTarget decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.lineTargetService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Line target created", result)
}

// BulkCreate handles POST /line-targets/bulk
func (h *lineTargetHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req linetarget.BulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkCreateLineTargets decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.lineTargetService.BulkCreate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Line targets created", result)
}

// GetByID handles GET /line-targets/{id}
func (h *lineTargetHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "id")
	if !ok {
		return
	}

	result, err := h.lineTargetService.GetByID(r.Context(), ids[0])
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddDetail handles POST /line-targets/{id}/details
func (h *lineTargetHandlerImpl) AddDetail(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "id")
	if !ok {
		return
	}

	var req linetarget.CreateLineTargetDetail
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddLineTargetDetail decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.lineTargetService.AddDetail(r.Context(), ids[0], req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Line target detail added", result)
}

// UpdateDetail handles PUT /line-targets/{id}/details/{detailID}
func (h *lineTargetHandlerImpl) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "id", "detailID")
	if !ok {
		return
	}

	var req linetarget.UpdateLineTargetDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLineTargetDetail decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.lineTargetService.UpdateDetail(r.Context(), ids[0], ids[1], req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Line target detail updated", result)
}

// DeleteDetail handles DELETE /line-targets/{id}/details/{detailID}
func (h *lineTargetHandlerImpl) DeleteDetail(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "id", "detailID")
	if !ok {
		return
	}

	result, err := h.lineTargetService.DeleteDetail(r.Context(), ids[0], ids[1])
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Line target detail deleted", result)
}
