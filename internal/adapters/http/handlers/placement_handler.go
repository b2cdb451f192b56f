package handlers

import (
	"fmt"
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/domain/recruited"
	"github.com/glowtours/backoffice/internal/ports"
)

// PlacementHandler handles HTTP requests for recruited-worker records and
// their CSV export.
type PlacementHandler struct {
	svc ports.PlacementService
}

// NewPlacementHandler creates a new PlacementHandler with the given service
// port.
func NewPlacementHandler(svc ports.PlacementService) *PlacementHandler {
	return &PlacementHandler{svc: svc}
}

// List handles GET /api/v1/workers.
func (h *PlacementHandler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToWorkerListResponse(workers))
}

// Get handles GET /api/v1/workers/{id}.
func (h *PlacementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	worker, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToWorkerResponse(worker))
}

// Create handles POST /api/v1/workers.
func (h *PlacementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.WorkerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToWorkerResponse(created))
}

// Update handles PUT /api/v1/workers/{id}.
func (h *PlacementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.WorkerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToWorkerResponse(updated))
}

// Delete handles DELETE /api/v1/workers/{id}.
func (h *PlacementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/v1/workers/export, serving the full collection as
// a CSV download.
func (h *PlacementHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.svc.ExportCSV(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		dto.WriteErrorResponse(w, r, err)
	}
}

// Photo handles GET /api/v1/workers/{id}/photo, serving the stored photo
// as a file download.
func (h *PlacementHandler) Photo(w http.ResponseWriter, r *http.Request) {
	h.attachment(w, r, "photo", func(worker *recruited.Worker) string { return worker.Photo })
}

// Permit handles GET /api/v1/workers/{id}/permit, serving the stored work
// permit as a file download.
func (h *PlacementHandler) Permit(w http.ResponseWriter, r *http.Request) {
	h.attachment(w, r, "permit", func(worker *recruited.Worker) string { return worker.Permit })
}

func (h *PlacementHandler) attachment(w http.ResponseWriter, r *http.Request, field string, pick func(*recruited.Worker) string) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	worker, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	serveAttachment(w, r, pick(worker), field+"-"+worker.ID)
}
